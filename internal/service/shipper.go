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
	shipperService *ShipperService
	shipperOnce    sync.Once
)

func Shipper() *ShipperService {
	shipperOnce.Do(func() {
		shipperService = &ShipperService{}
	})
	return shipperService
}

type ShipperService struct{}

func (s *ShipperService) loadProfile(ctx context.Context, userID int64) (*model.ShipperProfile, error) {
	db := database.DB().WithContext(ctx)

	var profile model.ShipperProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		profile = model.ShipperProfile{
			UserID:            userID,
			ProductCategories: []string{},
			PrimaryPorts:      []string{},
			CompletedSteps:    []string{},
		}
		return &profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query shipper profile: %w", err)
	}
	return &profile, nil
}

// Me 返回已填资料和续填位置
func (s *ShipperService) Me(ctx context.Context, user *model.User) (*dto.ShipperProfileResponse, error) {
	if user.UserType != model.UserTypeShipper {
		return nil, errors.RoleMismatch
	}

	profile, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	w, err := onboarding.Initialize(user.UserType, user.ShipperFormCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.ShipperProfileResponse{
		BusinessType:             profile.BusinessType,
		ProductCategories:        profile.ProductCategories,
		HSCode:                   profile.HSCode,
		AverageMonthlyContainers: profile.AverageMonthlyContainers,
		PrimaryPorts:             profile.PrimaryPorts,

		CargoInsuranceProvider: profile.CargoInsuranceProvider,
		PreferredInsuranceMode: profile.PreferredInsuranceMode,
		UseContainerIQInsurers: profile.UseContainerIQInsurers,

		ConsentContainerTracking: profile.ConsentContainerTracking,
		ConsentCargoRiskScoring:  profile.ConsentCargoRiskScoring,
		ConsentDataSharing:       profile.ConsentDataSharing,

		CACCertificateFileID:   profile.CACCertificateFileID,
		ExportLicenseFileID:    profile.ExportLicenseFileID,
		InsuranceSummaryFileID: profile.InsuranceSummaryFileID,

		CompletedSteps: profile.CompletedSteps,
		ResumeStep:     w.Current(),
	}, nil
}

// SubmitStep 通过向导状态机提交某个步骤
func (s *ShipperService) SubmitStep(ctx context.Context, user *model.User, step string, payload interface{}) (*dto.WizardStepResponse, error) {
	if user.UserType != model.UserTypeShipper {
		return nil, errors.RoleMismatch
	}

	w, err := onboarding.Initialize(user.UserType, user.ShipperFormCompleted)
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

func (s *ShipperService) persistStep(user *model.User) onboarding.SubmitFunc {
	return func(ctx context.Context, step string, payload interface{}) error {
		profile, err := s.loadProfile(ctx, user.ID)
		if err != nil {
			return err
		}

		switch step {
		case "business":
			req, ok := payload.(dto.ShipperBusinessRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.BusinessType = req.BusinessType
			profile.ProductCategories = orEmpty(req.ProductCategories)
			profile.HSCode = req.HSCode
			profile.AverageMonthlyContainers = req.AverageMonthlyContainers
			profile.PrimaryPorts = orEmpty(req.PrimaryPorts)
		case "cargo":
			req, ok := payload.(dto.ShipperCargoRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.CargoInsuranceProvider = req.CargoInsuranceProvider
			profile.PreferredInsuranceMode = req.PreferredInsuranceMode
			profile.UseContainerIQInsurers = req.UseContainerIQInsurers
		case "consents":
			req, ok := payload.(dto.ShipperConsentsRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			// 三项同意缺一不可
			if !req.ConsentContainerTracking || !req.ConsentCargoRiskScoring || !req.ConsentDataSharing {
				return errors.ConsentRequired
			}
			profile.ConsentContainerTracking = true
			profile.ConsentCargoRiskScoring = true
			profile.ConsentDataSharing = true
		case "documents":
			req, ok := payload.(dto.ShipperDocumentsRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			// 文件内容走 file_assets，这里只落引用
			profile.CACCertificateFileID = req.CACCertificateFileID
			profile.ExportLicenseFileID = req.ExportLicenseFileID
			profile.InsuranceSummaryFileID = req.InsuranceSummaryFileID
		default:
			return errors.OnboardingStepInvalid
		}

		profile.CompletedSteps = appendStep(profile.CompletedSteps, step)

		db := database.DB().WithContext(ctx)
		if err := db.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to save shipper profile: %w", err)
		}

		if err := bumpRoleCounter(ctx, user, "shipper_form_completed",
			stepOrdinal(model.UserTypeShipper, step), model.ShipperFormThreshold); err != nil {
			return err
		}

		logger.Logger.Info("Shipper onboarding step saved",
			zap.Int64("public_id", user.PublicID),
			zap.String("step", step),
		)

		return nil
	}
}
