package services

import (
	"errors"
	"strings"

	"epoch-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

const (
	reviewNameMin    = 2
	reviewNameMax    = 100
	reviewContentMin = 10
	reviewContentMax = 1000
)

// Create validates and stores a visitor review. Public submissions go live
// immediately; admins can hide them afterwards.
func (s *ReviewService) Create(authorName, content string, rating int, userID *uint) (*models.Review, error) {
	authorName = strings.TrimSpace(authorName)
	content = strings.TrimSpace(content)

	if n := len([]rune(authorName)); n < reviewNameMin || n > reviewNameMax {
		return nil, validationError("name must be 2-100 characters")
	}
	if n := len([]rune(content)); n < reviewContentMin || n > reviewContentMax {
		return nil, validationError("review must be 10-1000 characters")
	}
	if rating < 1 || rating > 5 {
		return nil, validationError("rating must be between 1 and 5")
	}

	review := models.Review{
		AuthorName: authorName,
		Content:    content,
		Rating:     rating,
		UserID:     userID,
		IsApproved: true,
	}
	if err := s.DB.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListPublic returns approved reviews, newest first. limit <= 0 means all.
func (s *ReviewService) ListPublic(limit int) ([]models.Review, error) {
	q := s.DB.Where("is_approved = ?", true).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetApproval sets the moderation flag to an explicit target state, so a
// repeated approve (or hide) is a no-op.
func (s *ReviewService) SetApproval(id uint, approved bool) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if review.IsApproved != approved {
		if err := s.DB.Model(&review).Update("is_approved", approved).Error; err != nil {
			return nil, err
		}
		review.IsApproved = approved
	}
	return &review, nil
}

// Delete removes a review permanently. No soft-delete or undo.
func (s *ReviewService) Delete(id uint) error {
	res := s.DB.Unscoped().Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReviewService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Review{}).Count(&n).Error
	return n, err
}
