package services

import (
	"errors"
	"strings"

	"epoch-backend/models"

	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

// Create records an uploaded photo. Uploads start hidden until approved.
func (s *GalleryService) Create(userID uint, imageURL, caption string) (*models.GalleryItem, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, validationError("image_url is required")
	}

	item := models.GalleryItem{
		UserID:     userID,
		ImageURL:   imageURL,
		Caption:    strings.TrimSpace(caption),
		IsApproved: false,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListPublic returns approved photos, newest first. limit <= 0 means all.
func (s *GalleryService) ListPublic(limit int) ([]models.GalleryItem, error) {
	q := s.DB.Where("is_approved = ?", true).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var items []models.GalleryItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GalleryService) ListAll() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	if err := s.DB.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GalleryService) SetApproval(id uint, approved bool) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.IsApproved != approved {
		if err := s.DB.Model(&item).Update("is_approved", approved).Error; err != nil {
			return nil, err
		}
		item.IsApproved = approved
	}
	return &item, nil
}

func (s *GalleryService) Delete(id uint) error {
	res := s.DB.Unscoped().Delete(&models.GalleryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GalleryService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.GalleryItem{}).Count(&n).Error
	return n, err
}
