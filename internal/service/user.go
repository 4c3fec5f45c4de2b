package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContainerIQ/config"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/internal/onboarding"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
	"ContainerIQ/utils"
)

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})
	return userService
}

type UserService struct{}

// Me 返回用户快照和门控判定，每次现算，不走缓存
func (s *UserService) Me(ctx context.Context, publicID int64, accessToken string) (*dto.MeResponse, error) {
	user, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	access := onboarding.ResolveAccess(onboarding.Session{
		Token: accessToken,
		User:  user,
	})

	return &dto.MeResponse{
		User:   dto.NewUserSnapshot(user),
		Access: access,
	}, nil
}

// SubmitProfile 基础注册第二步，form_completed 用 GREATEST 推到 2
func (s *UserService) SubmitProfile(ctx context.Context, publicID int64, req dto.ProfileRequest) (*dto.SignupStepResponse, error) {
	user, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	db := database.DB().WithContext(ctx)

	updates := map[string]interface{}{
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"job_title":      req.JobTitle,
		"gov_id":         req.GovID,
		"gov_id_type":    req.GovIDType,
		"phone":          req.ContactPhone,
		"contact_email":  req.ContactEmail,
		"form_completed": gorm.Expr("GREATEST(form_completed, ?)", 2),
	}

	if err := db.Model(&model.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.stepResponse(ctx, publicID)
}

// SubmitOrganization 基础注册第三步，三项同意必须全部为 true
func (s *UserService) SubmitOrganization(ctx context.Context, publicID int64, req dto.OrganizationRequest) (*dto.SignupStepResponse, error) {
	if !req.AcceptTermsOfService || !req.AcceptDataSharingConsent || !req.AcceptNiiraCompliance {
		return nil, errors.ConsentRequired
	}

	user, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	db := database.DB().WithContext(ctx)

	operational := req.OperationalAddresses
	if operational == nil {
		operational = []string{}
	}

	// 税号落库前加密，未配置密钥时降级为明文并告警
	taxID := req.TaxIdentificationNumber
	if taxID != "" && config.Cfg.EncryptionKey != "" {
		encrypted, err := utils.EncryptSensitive(taxID)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt tax identification number: %w", err)
		}
		taxID = encrypted
	} else if taxID != "" {
		logger.Logger.Warn("ENCRYPTION_KEY not set, storing tax identification number unencrypted")
	}

	updates := map[string]interface{}{
		"company_name":              req.LegalEntityName,
		"registered_business_name":  req.RegisteredBusinessName,
		"cac_registration_number":   req.CACRegistrationNumber,
		"year_of_incorporation":     req.YearOfIncorporation,
		"business_address_hq":       req.BusinessAddressHQ,
		"country_of_operation":      req.CountryOfOperation,
		"tax_identification_number": taxID,
		"digital_signature_name":    req.DigitalSignatureName,
		"terms_accepted":            true,
		"data_sharing_accepted":     true,
		"niira_compliance_accepted": true,
		"form_completed":            gorm.Expr("GREATEST(form_completed, ?)", 3),
	}

	if err := db.Model(&model.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	// jsonb 数组走序列化器单独更新
	if err := db.Model(&model.User{BaseModel: model.BaseModel{ID: user.ID}}).
		Update("operational_addresses", operational).Error; err != nil {
		return nil, fmt.Errorf("failed to update operational addresses: %w", err)
	}

	logger.Logger.Info("Signup organization step completed",
		zap.Int64("public_id", publicID),
	)

	return s.stepResponse(ctx, publicID)
}

func (s *UserService) stepResponse(ctx context.Context, publicID int64) (*dto.SignupStepResponse, error) {
	fresh, err := GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return &dto.SignupStepResponse{
		FormCompleted: fresh.FormCompleted,
		User:          dto.NewUserSnapshot(fresh),
	}, nil
}
