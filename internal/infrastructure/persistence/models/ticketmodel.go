package models

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	RequesterID  uint   `gorm:"not null;index"`
	AssetID      uint   `gorm:"not null;index"`
	Description  string `gorm:"type:text;not null"`
	DamageType   string `gorm:"size:50;not null;default:'';index"`
	Status       string `gorm:"size:20;not null;index"`
	Technician   string `gorm:"size:100;not null;default:''"`
	WorkLog      string `gorm:"type:text;not null;default:''"`
	DocumentPath string `gorm:"size:255;not null;default:''"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations. The requester
	// and asset cascades are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
