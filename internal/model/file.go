package model

// FileAsset 上传的文件，内容直接存 bytea，对外只暴露 uuid
type FileAsset struct {
	BaseModel
	PublicID    string `gorm:"uniqueIndex;type:varchar(36);not null" json:"public_id"`
	UserID      int64  `gorm:"index:idx_file_assets_user_id;not null" json:"user_id"`
	Folder      string `gorm:"type:varchar(64);not null;default:''" json:"folder"`
	FileName    string `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string `gorm:"type:varchar(128);not null;default:''" json:"content_type"`
	Size        int64  `gorm:"not null;default:0" json:"size"`
	Content     []byte `gorm:"type:bytea" json:"-"`
}

func (FileAsset) TableName() string {
	return "file_assets"
}
