package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ContainerIQ/internal/model"
	"ContainerIQ/pkg/logger"
)

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	// 迁移所有模型
	err := db.AutoMigrate(
		&model.User{},
		&model.InsuranceProfile{},
		&model.ShipperProfile{},
		&model.FleetProfile{},
		&model.FileAsset{},
		&model.Container{},
	)

	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	if err := seedContainers(db); err != nil {
		logger.Logger.Error("Container seed failed", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}

// seedContainers 写入演示用的集装箱数据，按 code 去重，已存在则跳过
func seedContainers(db *gorm.DB) error {
	seeds := []model.Container{
		{Code: "CNT001", Status: model.ContainerStatusActive, Lat: 6.4541, Lng: 3.3947, Location: "Apapa Port, Lagos", Company: "Jim Vessels & Co.", IMO: "1234567", OfficialNum: "5NAB8", MMSI: "235123456", PortOfRegistry: "Limassol, Panama City, Lagos.", RiskScore: 85},
		{Code: "CNT002", Status: model.ContainerStatusWarning, Lat: 6.5244, Lng: 3.3792, Location: "Ikeja, Lagos", Company: "Lagos Logistics Ltd", RiskScore: 72},
		{Code: "CNT003", Status: model.ContainerStatusActive, Lat: 6.6018, Lng: 3.3515, Location: "Ota, Ogun", Company: "Ogun Freight Co.", RiskScore: 88},
		{Code: "CNT004", Status: model.ContainerStatusDanger, Lat: 4.7719, Lng: 7.0134, Location: "Onne Port, Rivers", Company: "Rivers Maritime", RiskScore: 45},
		{Code: "CNT005", Status: model.ContainerStatusActive, Lat: 5.5099, Lng: 5.7550, Location: "Warri, Delta", Company: "Delta Cargo Inc.", RiskScore: 91},
		{Code: "CNT006", Status: model.ContainerStatusActive, Lat: 4.8156, Lng: 7.0498, Location: "Port Harcourt", Company: "PH Shipping Ltd", RiskScore: 87},
		{Code: "CNT007", Status: model.ContainerStatusWarning, Lat: 6.4698, Lng: 3.5852, Location: "Lekki, Lagos", Company: "Lekki Express", RiskScore: 68},
		{Code: "CNT008", Status: model.ContainerStatusActive, Lat: 9.0765, Lng: 7.3986, Location: "Abuja", Company: "Capital Freight", RiskScore: 90},
		{Code: "CNT009", Status: model.ContainerStatusWarning, Lat: 7.3775, Lng: 3.9470, Location: "Ibadan, Oyo", Company: "Oyo Transport Co.", RiskScore: 70},
		{Code: "CNT010", Status: model.ContainerStatusActive, Lat: 11.8486, Lng: 13.1574, Location: "Maiduguri, Borno", Company: "North East Cargo", RiskScore: 82},
		{Code: "CNT011", Status: model.ContainerStatusDanger, Lat: 12.0022, Lng: 8.5919, Location: "Kano", Company: "Kano Haulage", RiskScore: 50},
		{Code: "CNT012", Status: model.ContainerStatusActive, Lat: 4.9609, Lng: 8.3417, Location: "Calabar, Cross River", Company: "Calabar Shipping", RiskScore: 86},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&seeds).Error
}
