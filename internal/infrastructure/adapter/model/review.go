package model

import (
	"time"
)

// Review represents the database model for campaign reviews
type Review struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	CampaignID uint64    `gorm:"not null;index"`
	AuthorID   uint64    `gorm:"not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Define relationships
	Campaign Campaign `gorm:"foreignKey:CampaignID;references:ID"`
	Author   User     `gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}
