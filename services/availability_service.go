package services

import (
	"errors"
	"strings"
	"time"

	"epoch-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService owns the bookable-day calendar: public reads for the
// availability widget and the staff upsert surface.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailabilityInfo is the public answer for one date. Known is false when the
// calendar has no row for the date; such dates render as unavailable but the
// booking form does not hard-block on them.
type AvailabilityInfo struct {
	Date      string `json:"date"`
	Known     bool   `json:"known"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
	Notes     string `json:"notes,omitempty"`
}

func parseDay(date string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return "", validationError("date must be YYYY-MM-DD")
	}
	return t.Format("2006-01-02"), nil
}

func (s *AvailabilityService) Check(date string) (AvailabilityInfo, error) {
	day, err := parseDay(date)
	if err != nil {
		return AvailabilityInfo{}, err
	}

	var row models.AvailabilityDay
	if err := s.DB.Where("date = ?", day).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AvailabilityInfo{Date: day}, nil
		}
		return AvailabilityInfo{}, err
	}

	return AvailabilityInfo{
		Date:      row.Date,
		Known:     true,
		Available: row.Bookable(),
		Remaining: row.Remaining(),
		Notes:     row.Notes,
	}, nil
}

// ListFrom returns all calendar rows on or after the given date, oldest first.
func (s *AvailabilityService) ListFrom(from string) ([]models.AvailabilityDay, error) {
	day, err := parseDay(from)
	if err != nil {
		return nil, err
	}

	var rows []models.AvailabilityDay
	if err := s.DB.Where("date >= ?", day).Order("date asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert creates or edits one calendar day. current_bookings is owned by the
// booking flow and never reset here.
func (s *AvailabilityService) Upsert(date string, isAvailable bool, maxBookings int, notes string) (*models.AvailabilityDay, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}
	if maxBookings < 1 {
		return nil, validationError("max_bookings must be at least 1")
	}

	var row models.AvailabilityDay
	err = s.DB.Where("date = ?", day).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.AvailabilityDay{
			Date:        day,
			IsAvailable: isAvailable,
			MaxBookings: maxBookings,
			Notes:       notes,
		}
		if createErr := s.DB.Create(&row).Error; createErr != nil {
			if isDuplicateKey(createErr) {
				// lost a create race; fall through to the update path
				if err := s.DB.Where("date = ?", day).First(&row).Error; err != nil {
					return nil, err
				}
			} else {
				return nil, createErr
			}
		} else {
			return &row, nil
		}
	} else if err != nil {
		return nil, err
	}

	if maxBookings < row.CurrentBookings {
		return nil, validationError("max_bookings cannot be below current bookings")
	}

	updates := map[string]interface{}{
		"is_available": isAvailable,
		"max_bookings": maxBookings,
		"notes":        notes,
	}
	if err := s.DB.Model(&row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// releaseSlot undoes one reserved slot for a day, floored at zero. Days with
// no calendar row have nothing to release.
func releaseSlot(tx *gorm.DB, date string) error {
	return tx.Model(&models.AvailabilityDay{}).
		Where("date = ? AND current_bookings > 0", date).
		UpdateColumn("current_bookings", gorm.Expr("current_bookings - 1")).Error
}
