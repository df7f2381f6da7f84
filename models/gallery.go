package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryItem is a guest-submitted photo. New uploads start hidden and only
// show publicly once an admin approves them.
type GalleryItem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"column:user_id;index" json:"user_id"`
	ImageURL   string         `gorm:"column:image_url;size:500" json:"image_url"`
	Caption    string         `gorm:"size:500" json:"caption,omitempty"`
	IsApproved bool           `gorm:"column:is_approved;default:false;index" json:"is_approved"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
