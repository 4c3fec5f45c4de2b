package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/onboarding"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
)

var (
	fleetService *FleetService
	fleetOnce    sync.Once
)

func Fleet() *FleetService {
	fleetOnce.Do(func() {
		fleetService = &FleetService{}
	})
	return fleetService
}

type FleetService struct{}

func (s *FleetService) loadProfile(ctx context.Context, userID int64) (*model.FleetProfile, error) {
	db := database.DB().WithContext(ctx)

	var profile model.FleetProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		profile = model.FleetProfile{
			UserID:               userID,
			TruckTypes:           []string{},
			OperationalCorridors: []string{},
			CompletedSteps:       []string{},
		}
		return &profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet profile: %w", err)
	}
	return &profile, nil
}

// Me 返回已填资料和续填位置
func (s *FleetService) Me(ctx context.Context, user *model.User) (*dto.FleetStateResponse, error) {
	if user.UserType != model.UserTypeFleetOperator {
		return nil, errors.RoleMismatch
	}

	profile, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	w, err := onboarding.Initialize(user.UserType, user.FleetFormCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.FleetStateResponse{
		NumberOfTrucks:       profile.NumberOfTrucks,
		TruckTypes:           profile.TruckTypes,
		OwnershipModel:       profile.OwnershipModel,
		OperationalCorridors: profile.OperationalCorridors,

		HasDriverVerification:    profile.HasDriverVerification,
		FRSCComplianceStatus:     profile.FRSCComplianceStatus,
		VehicleInsuranceProvider: profile.VehicleInsuranceProvider,
		HasGpsInstalled:          profile.HasGpsInstalled,
		HasElockInstalled:        profile.HasElockInstalled,
		WillingToInstallDevices:  profile.WillingToInstallDevices,

		FleetInsuranceFileID:      profile.FleetInsuranceFileID,
		VehicleLicensesFileID:     profile.VehicleLicensesFileID,
		DriverAccreditationFileID: profile.DriverAccreditationFileID,

		CompletedSteps: profile.CompletedSteps,
		ResumeStep:     w.Current(),
	}, nil
}

// SubmitStep 通过向导状态机提交某个步骤
func (s *FleetService) SubmitStep(ctx context.Context, user *model.User, step string, payload interface{}) (*dto.WizardStepResponse, error) {
	if user.UserType != model.UserTypeFleetOperator {
		return nil, errors.RoleMismatch
	}

	w, err := onboarding.Initialize(user.UserType, user.FleetFormCompleted)
	if err != nil {
		return nil, err
	}

	if err := w.Advance(ctx, step, payload, s.persistStep(user)); err != nil {
		return nil, err
	}

	profile, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return wizardStepResponse(ctx, user.PublicID, step, profile.CompletedSteps)
}

func (s *FleetService) persistStep(user *model.User) onboarding.SubmitFunc {
	return func(ctx context.Context, step string, payload interface{}) error {
		profile, err := s.loadProfile(ctx, user.ID)
		if err != nil {
			return err
		}

		switch step {
		case "profile":
			req, ok := payload.(dto.FleetProfileRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.NumberOfTrucks = req.NumberOfTrucks
			profile.TruckTypes = orEmpty(req.TruckTypes)
			profile.OwnershipModel = req.OwnershipModel
			profile.OperationalCorridors = orEmpty(req.OperationalCorridors)
		case "compliance":
			req, ok := payload.(dto.FleetComplianceRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.HasDriverVerification = req.HasDriverVerification
			profile.FRSCComplianceStatus = req.FRSCComplianceStatus
			profile.VehicleInsuranceProvider = req.VehicleInsuranceProvider
			profile.HasGpsInstalled = req.HasGpsInstalled
			profile.HasElockInstalled = req.HasElockInstalled
			profile.WillingToInstallDevices = req.WillingToInstallDevices
		case "documents":
			req, ok := payload.(dto.FleetDocumentsRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			// 文件内容走 file_assets，这里只落引用
			profile.FleetInsuranceFileID = req.FleetInsuranceFileID
			profile.VehicleLicensesFileID = req.VehicleLicensesFileID
			profile.DriverAccreditationFileID = req.DriverAccreditationFileID
		default:
			return errors.OnboardingStepInvalid
		}

		profile.CompletedSteps = appendStep(profile.CompletedSteps, step)

		db := database.DB().WithContext(ctx)
		if err := db.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to save fleet profile: %w", err)
		}

		if err := bumpRoleCounter(ctx, user, "fleet_form_completed",
			stepOrdinal(model.UserTypeFleetOperator, step), model.FleetFormThreshold); err != nil {
			return err
		}

		logger.Logger.Info("Fleet onboarding step saved",
			zap.Int64("public_id", user.PublicID),
			zap.String("step", step),
		)

		return nil
	}
}
