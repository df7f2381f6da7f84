package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is visitor feedback. Public submissions go live immediately
// (is_approved = true) but an admin can hide or delete them afterwards.
type Review struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	AuthorName string         `gorm:"column:author_name;size:100" json:"author_name"`
	Content    string         `gorm:"type:text" json:"content"`
	Rating     int            `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	UserID     *uint          `gorm:"column:user_id;index" json:"user_id,omitempty"`
	IsApproved bool           `gorm:"column:is_approved;default:true;index" json:"is_approved"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
