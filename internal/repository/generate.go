package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"ContainerIQ/internal/model"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/storage/database"
)

// ========== User 相关查询接口 ==========

// UserQuerier 用户查询接口
type UserQuerier interface {
	// GetByPublicID 根据 PublicID 查询用户（最常用，API 中 userID 是 public_id）
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// GetByEmail 根据邮箱查询用户（登录、注册查重）
	//
	// SELECT * FROM @@table WHERE email = @email LIMIT 1
	GetByEmail(email string) (*gen.T, error)

	// ListStaleSignups 查询注册向导未完成且长时间未更新的用户（用于唤回提醒）
	//
	// SELECT * FROM @@table
	// WHERE email_verified = true
	//   AND form_completed < 3
	//   AND updated_at < @cutoff::timestamptz
	// ORDER BY updated_at ASC
	// LIMIT @limit
	ListStaleSignups(cutoff string, limit int) ([]*gen.T, error)

	// CountByUserType 统计各角色的用户数量
	//
	// SELECT user_type, COUNT(*) as count
	// FROM @@table
	// GROUP BY user_type
	CountByUserType() ([]gen.M, error)
}

// ========== 角色引导资料查询接口 ==========

// ProfileQuerier 三张角色资料表共用的查询接口
type ProfileQuerier interface {
	// GetByUserID 根据用户主键查询资料行，每个用户至多一行
	//
	// SELECT * FROM @@table WHERE user_id = @userID LIMIT 1
	GetByUserID(userID int64) (*gen.T, error)
}

// ========== FileAsset 相关查询接口 ==========

// FileAssetQuerier 文件查询接口
type FileAssetQuerier interface {
	// GetByPublicID 根据 PublicID 查询文件
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID string) (*gen.T, error)

	// ListByUserIDAndFolder 按用户和目录查询文件（不含内容列，列表页用）
	//
	// SELECT id, created_at, updated_at, public_id, user_id, folder, file_name, content_type, size
	// FROM @@table
	// WHERE user_id = @userID
	//   {{if folder != ""}}
	//   AND folder = @folder
	//   {{end}}
	// ORDER BY created_at DESC
	ListByUserIDAndFolder(userID int64, folder string) ([]*gen.T, error)
}

// ========== Container 相关查询接口 ==========

// ContainerQuerier 集装箱查询接口
type ContainerQuerier interface {
	// GetByCode 根据编号查询集装箱
	//
	// SELECT * FROM @@table WHERE code = @code LIMIT 1
	GetByCode(code string) (*gen.T, error)

	// CountByStatus 按状态统计集装箱数量（看板 KPI 用）
	//
	// SELECT status, COUNT(*) as count
	// FROM @@table
	// GROUP BY status
	CountByStatus() ([]gen.M, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 运行数据库迁移（确保表存在）
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migration: %w", err)
	}

	db := database.DB()
	if db == nil {
		return errors.ErrDatabaseConnectionNil
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "ContainerIQ/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true, // 字段可以为 null
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有的 model，GORM Gen 会使用这些 model 而不是生成新的
	g.ApplyBasic(
		&model.User{},
		&model.InsuranceProfile{},
		&model.ShipperProfile{},
		&model.FleetProfile{},
		&model.FileAsset{},
		&model.Container{},
	)

	// 直接应用接口，GORM Gen 会根据接口中的类型自动匹配已注册的 model
	g.ApplyInterface(func(UserQuerier) {}, &model.User{})
	g.ApplyInterface(func(ProfileQuerier) {}, &model.InsuranceProfile{})
	g.ApplyInterface(func(ProfileQuerier) {}, &model.ShipperProfile{})
	g.ApplyInterface(func(ProfileQuerier) {}, &model.FleetProfile{})
	g.ApplyInterface(func(FileAssetQuerier) {}, &model.FileAsset{})
	g.ApplyInterface(func(ContainerQuerier) {}, &model.Container{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
