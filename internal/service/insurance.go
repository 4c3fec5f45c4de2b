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
	insuranceService *InsuranceService
	insuranceOnce    sync.Once
)

func Insurance() *InsuranceService {
	insuranceOnce.Do(func() {
		insuranceService = &InsuranceService{}
	})
	return insuranceService
}

type InsuranceService struct{}

func (s *InsuranceService) loadProfile(ctx context.Context, userID int64) (*model.InsuranceProfile, error) {
	db := database.DB().WithContext(ctx)

	var profile model.InsuranceProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		profile = model.InsuranceProfile{
			UserID:              userID,
			ReinsurancePartners: []string{},
			SelectedPorts:       []string{},
			SelectedStates:      []string{},
			PolicyTypes:         []string{},
			CompletedSteps:      []string{},
		}
		return &profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance profile: %w", err)
	}
	return &profile, nil
}

// Me 返回已填资料和续填位置
func (s *InsuranceService) Me(ctx context.Context, user *model.User) (*dto.InsuranceProfileResponse, error) {
	if user.UserType != model.UserTypeInsuranceCompany {
		return nil, errors.RoleMismatch
	}

	profile, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	w, err := onboarding.Initialize(user.UserType, user.InsuranceFormCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.InsuranceProfileResponse{
		InsuranceLicenseNumber: profile.InsuranceLicenseNumber,
		ClassOfInsurance:       profile.ClassOfInsurance,
		ReinsurancePartners:    profile.ReinsurancePartners,
		NaicomReportingCode:    profile.NaicomReportingCode,

		CoverageGeographyType: profile.CoverageGeographyType,
		SelectedPorts:         profile.SelectedPorts,
		SelectedStates:        profile.SelectedStates,
		CorridorDetails:       profile.CorridorDetails,
		InternationalCoverage: profile.InternationalCoverage,

		PolicyTypes: profile.PolicyTypes,

		ClaimsProcessingModel:         profile.ClaimsProcessingModel,
		AcceptTelematicsRiskScoring:   profile.AcceptTelematicsRiskScoring,
		AcceptAutomatedClaimsEvidence: profile.AcceptAutomatedClaimsEvidence,
		APIIntegrationMode:            profile.APIIntegrationMode,

		ClaimsContactProtocol:      profile.ClaimsContactProtocol,
		InsuranceLicenseFileID:     profile.InsuranceLicenseFileID,
		NaicomApprovalLetterFileID: profile.NaicomApprovalLetterFileID,

		CompletedSteps: profile.CompletedSteps,
		ResumeStep:     w.Current(),
	}, nil
}

// SubmitStep 通过向导状态机提交某个步骤
// 乱序步骤拒绝且不动计数器，重复提交只覆盖资料
func (s *InsuranceService) SubmitStep(ctx context.Context, user *model.User, step string, payload interface{}) (*dto.WizardStepResponse, error) {
	if user.UserType != model.UserTypeInsuranceCompany {
		return nil, errors.RoleMismatch
	}

	w, err := onboarding.Initialize(user.UserType, user.InsuranceFormCompleted)
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

// persistStep 落库回调：更新资料行、补 completed_steps、推计数器
func (s *InsuranceService) persistStep(user *model.User) onboarding.SubmitFunc {
	return func(ctx context.Context, step string, payload interface{}) error {
		profile, err := s.loadProfile(ctx, user.ID)
		if err != nil {
			return err
		}

		switch step {
		case "license":
			req, ok := payload.(dto.InsuranceLicenseRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.InsuranceLicenseNumber = req.InsuranceLicenseNumber
			profile.ClassOfInsurance = req.ClassOfInsurance
			profile.ReinsurancePartners = orEmpty(req.ReinsurancePartners)
			profile.NaicomReportingCode = req.NaicomReportingCode
		case "coverage":
			req, ok := payload.(dto.InsuranceCoverageRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.CoverageGeographyType = req.CoverageGeographyType
			profile.SelectedPorts = orEmpty(req.SelectedPorts)
			profile.SelectedStates = orEmpty(req.SelectedStates)
			profile.CorridorDetails = req.CorridorDetails
			profile.InternationalCoverage = req.InternationalCoverage
		case "policy":
			req, ok := payload.(dto.InsurancePolicyRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.PolicyTypes = orEmpty(req.PolicyTypes)
		case "claims":
			req, ok := payload.(dto.InsuranceClaimsRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			profile.ClaimsProcessingModel = req.ClaimsProcessingModel
			profile.AcceptTelematicsRiskScoring = req.AcceptTelematicsRiskScoring
			profile.AcceptAutomatedClaimsEvidence = req.AcceptAutomatedClaimsEvidence
			profile.APIIntegrationMode = req.APIIntegrationMode
		case "documents":
			req, ok := payload.(dto.InsuranceDocumentsRequest)
			if !ok {
				return errors.OnboardingStepInvalid
			}
			// 文件内容走 file_assets，这里只落引用
			profile.ClaimsContactProtocol = req.ClaimsContactProtocol
			profile.InsuranceLicenseFileID = req.InsuranceLicenseFileID
			profile.NaicomApprovalLetterFileID = req.NaicomApprovalLetterFileID
		default:
			return errors.OnboardingStepInvalid
		}

		profile.CompletedSteps = appendStep(profile.CompletedSteps, step)

		db := database.DB().WithContext(ctx)
		if err := db.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to save insurance profile: %w", err)
		}

		if err := bumpRoleCounter(ctx, user, "insurance_form_completed",
			stepOrdinal(model.UserTypeInsuranceCompany, step), model.InsuranceFormThreshold); err != nil {
			return err
		}

		logger.Logger.Info("Insurance onboarding step saved",
			zap.Int64("public_id", user.PublicID),
			zap.String("step", step),
		)

		return nil
	}
}
