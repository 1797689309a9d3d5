package models

type RequesterModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null"`
	Identification string `gorm:"size:50;not null"`
	Email          string `gorm:"size:255;not null"`
	Phone          string `gorm:"size:20;not null;default:''"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RequesterModel) TableName() string {
	return "requesters"
}
