package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContainerIQ/config"
	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/logger"
	"ContainerIQ/storage/database"
)

var (
	fileService *FileService
	fileOnce    sync.Once
)

func File() *FileService {
	fileOnce.Do(func() {
		fileService = &FileService{}
	})
	return fileService
}

type FileService struct{}

func fileURL(publicID string) string {
	return "/api/files/" + publicID + "/content"
}

func toFileData(f *model.FileAsset) dto.FileAssetData {
	return dto.FileAssetData{
		PublicID:    f.PublicID,
		FileName:    f.FileName,
		Folder:      f.Folder,
		ContentType: f.ContentType,
		SizeBytes:   f.Size,
		URL:         fileURL(f.PublicID),
		UploadedAt:  f.CreatedAt,
	}
}

// Upload 保存上传内容，超过大小上限拒绝
func (s *FileService) Upload(ctx context.Context, user *model.User, folder, fileName, contentType string, content []byte) (*dto.FileAssetData, error) {
	if int64(len(content)) > config.Cfg.FileMaxBytes {
		return nil, errors.FileTooLarge
	}

	asset := &model.FileAsset{
		PublicID:    uuid.NewString(),
		UserID:      user.ID,
		Folder:      folder,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}

	db := database.DB().WithContext(ctx)
	if err := db.Create(asset).Error; err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	logger.Logger.Info("File uploaded",
		zap.Int64("public_id", user.PublicID),
		zap.String("file_id", asset.PublicID),
		zap.String("folder", folder),
		zap.Int64("size", asset.Size),
	)

	data := toFileData(asset)
	return &data, nil
}

// ListMine 列出用户自己的文件，不含内容
func (s *FileService) ListMine(ctx context.Context, user *model.User) (*dto.FileListResponse, error) {
	db := database.DB().WithContext(ctx)

	var assets []model.FileAsset
	err := db.Select("public_id", "user_id", "folder", "file_name", "content_type", "size", "created_at").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]dto.FileAssetData, 0, len(assets))
	for i := range assets {
		files = append(files, toFileData(&assets[i]))
	}

	return &dto.FileListResponse{Files: files}, nil
}

// Content 取文件内容，只限所有者
func (s *FileService) Content(ctx context.Context, user *model.User, publicID string) (*model.FileAsset, error) {
	db := database.DB().WithContext(ctx)

	var asset model.FileAsset
	if err := db.Where("public_id = ?", publicID).First(&asset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.FileNotFound
		}
		return nil, fmt.Errorf("failed to query file: %w", err)
	}

	if asset.UserID != user.ID {
		return nil, errors.FileForbidden
	}

	return &asset, nil
}

// Delete 删除文件，只限所有者
func (s *FileService) Delete(ctx context.Context, user *model.User, publicID string) error {
	db := database.DB().WithContext(ctx)

	var asset model.FileAsset
	if err := db.Where("public_id = ?", publicID).First(&asset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.FileNotFound
		}
		return fmt.Errorf("failed to query file: %w", err)
	}

	if asset.UserID != user.ID {
		return errors.FileForbidden
	}

	if err := db.Delete(&asset).Error; err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Logger.Info("File deleted",
		zap.Int64("public_id", user.PublicID),
		zap.String("file_id", publicID),
	)

	return nil
}
