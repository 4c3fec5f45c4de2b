package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"ContainerIQ/internal/service"
	"ContainerIQ/pkg/errors"
	"ContainerIQ/pkg/response"
)

// UploadFile 接收 multipart 上传，folder 区分业务归属（如 insurance-documents）
// POST /api/files?folder=xxx
func UploadFile(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BindError(ctx, c, fmt.Errorf("missing file field: %w", err))
		return
	}

	folder := c.Query("folder")
	if folder == "" {
		folder = "uploads"
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(ctx, c, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		response.Error(ctx, c, fmt.Errorf("failed to read uploaded file: %w", err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := service.File().Upload(ctx, user, folder, fileHeader.Filename, contentType, content)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListMyFiles 列出当前用户的所有文件，不含文件内容
// GET /api/files/me
func ListMyFiles(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.File().ListMine(ctx, user)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetFileContent 下载文件内容，仅限本人
// GET /api/files/:id/content
func GetFileContent(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	publicID := c.Param("id")
	if publicID == "" {
		response.Error(ctx, c, errors.FileNotFound)
		return
	}

	asset, err := service.File().Content(ctx, user, publicID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", asset.FileName))
	c.Data(consts.StatusOK, contentType, asset.Content)
}

// DeleteFile 删除文件，仅限本人
// DELETE /api/files/:id
func DeleteFile(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	publicID := c.Param("id")
	if publicID == "" {
		response.Error(ctx, c, errors.FileNotFound)
		return
	}

	if err := service.File().Delete(ctx, user, publicID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
