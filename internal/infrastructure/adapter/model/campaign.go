package model

import (
	"time"
)

// Campaign represents the database model for campaigns.
// CurrentAmount and InvestorCount are denormalized aggregates; the
// investment transaction updates them under a row lock.
type Campaign struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID       uint64    `gorm:"not null;index:idx_campaigns_owner_status"`
	Title         string    `gorm:"not null;size:255"`
	Description   string    `gorm:"type:text;not null"`
	Category      string    `gorm:"size:100;index"`
	TargetAmount  int64     `gorm:"not null"`           // cents
	CurrentAmount int64     `gorm:"not null;default:0"` // cents
	InvestorCount int64     `gorm:"not null;default:0"`
	Deadline      time.Time
	ImageURL      string    `gorm:"size:512"`
	Status        string    `gorm:"not null;size:50;index:idx_campaigns_owner_status"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName specifies the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}
