package dto

import "time"

// ========== 文件相关 DTO ==========

// FileAssetData 文件元信息
type FileAssetData struct {
	PublicID    string    `json:"publicId"`
	FileName    string    `json:"fileName"`
	Folder      string    `json:"folder"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// FileListResponse GET /files/me 响应
type FileListResponse struct {
	Files []FileAssetData `json:"files"`
}
