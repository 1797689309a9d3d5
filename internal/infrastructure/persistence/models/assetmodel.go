package models

type AssetModel struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"size:50;not null;index"`
	Serial    string `gorm:"size:50;not null;index"`
	Brand     string `gorm:"size:50;not null;default:''"`
	Model     string `gorm:"size:50;not null;default:''"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
