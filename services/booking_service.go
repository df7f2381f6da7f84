package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"epoch-backend/models"
	"epoch-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService decides whether a requested date may become a booking and
// keeps availability.current_bookings consistent under concurrent requests.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingRequest is the validated form payload.
type BookingRequest struct {
	Name     string
	Email    string
	Phone    string
	Date     string // YYYY-MM-DD
	Time     string
	Guests   int
	Occasion string
	Location string
	AddOns   []string
	Notes    string
}

// Two browser sessions can race for the last slot on a day, so the reserve
// step is a conditional update retried a bounded number of times. Losers get
// ErrSlotUnavailable and no booking row.
const maxReserveAttempts = 3

// CalculateTotal is the base price plus the sum of the selected add-ons.
// Zero-priced add-ons (price on request) and unknown ids contribute nothing.
func CalculateTotal(addOnIDs []string) float64 {
	total := models.BasePrice
	for _, id := range addOnIDs {
		if addOn := models.FindAddOn(id); addOn != nil && addOn.Price > 0 {
			total += addOn.Price
		}
	}
	return total
}

func (r *BookingRequest) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Time = strings.TrimSpace(r.Time)
	r.Occasion = strings.TrimSpace(r.Occasion)

	missing := []string{}
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.Occasion == "" {
		missing = append(missing, "occasion")
	}
	if len(missing) > 0 {
		return validationError("missing required fields: " + strings.Join(missing, ", "))
	}

	day, err := parseDay(r.Date)
	if err != nil {
		return err
	}
	r.Date = day

	if r.Guests == 0 {
		r.Guests = models.DefaultGuests
	}
	if r.Guests < models.MinGuests {
		r.Guests = models.MinGuests
	}
	if r.Guests > models.MaxGuests {
		r.Guests = models.MaxGuests
	}
	return nil
}

// CreateBooking validates the form, reserves a slot on the matching
// availability day and persists a pending booking, all atomically. The
// returned link is the prefilled WhatsApp message for the guest; building it
// can never fail the booking.
func (s *BookingService) CreateBooking(req BookingRequest) (*models.Booking, string, error) {
	if err := req.validate(); err != nil {
		return nil, "", err
	}
	total := CalculateTotal(req.AddOns)

	var booking *models.Booking
	reserved := false

	for attempt := 0; attempt < maxReserveAttempts && !reserved; attempt++ {
		var day models.AvailabilityDay
		err := s.DB.Where("date = ?", req.Date).First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No calendar row: accept without slot accounting so the
			// request is not lost; staff triage it from the dashboard.
			b, createErr := s.insertBooking(s.DB, req, total, false)
			if createErr != nil {
				return nil, s.buildLink(req, total), createErr
			}
			return b, s.buildLink(req, total), nil
		}
		if err != nil {
			return nil, s.buildLink(req, total), err
		}

		if !day.Bookable() {
			return nil, "", ErrSlotUnavailable
		}

		txErr := s.DB.Transaction(func(tx *gorm.DB) error {
			// Optimistic concurrency: the increment only lands if
			// current_bookings still matches what we read.
			res := tx.Model(&models.AvailabilityDay{}).
				Where("id = ? AND current_bookings = ? AND current_bookings < max_bookings AND is_available = ?",
					day.ID, day.CurrentBookings, true).
				UpdateColumn("current_bookings", gorm.Expr("current_bookings + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errRetryReserve
			}

			b, createErr := s.insertBooking(tx, req, total, true)
			if createErr != nil {
				return createErr
			}
			booking = b
			return nil
		})
		switch {
		case txErr == nil:
			reserved = true
		case errors.Is(txErr, errRetryReserve):
			// lost the race; re-read and decide again
		default:
			return nil, s.buildLink(req, total), txErr
		}
	}

	if !reserved {
		return nil, "", ErrSlotUnavailable
	}
	return booking, s.buildLink(req, total), nil
}

func (s *BookingService) insertBooking(tx *gorm.DB, req BookingRequest, total float64, reserved bool) (*models.Booking, error) {
	addOns, err := json.Marshal(req.AddOns)
	if err != nil {
		return nil, fmt.Errorf("encode add-ons: %w", err)
	}

	booking := models.Booking{
		ReferenceCode: uuid.NewString(),
		GuestName:     req.Name,
		GuestEmail:    req.Email,
		GuestPhone:    req.Phone,
		BookingDate:   req.Date,
		BookingTime:   req.Time,
		Guests:        req.Guests,
		Occasion:      req.Occasion,
		Location:      req.Location,
		AddOns:        datatypes.JSON(addOns),
		TotalAmount:   total,
		Notes:         req.Notes,
		Status:        models.BookingStatusPending,
		WhatsAppSent:  true,
		SlotReserved:  reserved,
	}
	if err := tx.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) buildLink(req BookingRequest, total float64) string {
	names := make([]string, 0, len(req.AddOns))
	for _, id := range req.AddOns {
		if addOn := models.FindAddOn(id); addOn != nil {
			names = append(names, addOn.Name)
		}
	}
	return utils.BuildWhatsAppLink(models.WhatsAppBaseURL, utils.BookingSummary{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Date:       req.Date,
		Time:       req.Time,
		Guests:     req.Guests,
		Occasion:   req.Occasion,
		Location:   req.Location,
		AddOnNames: names,
		Total:      total,
		Notes:      req.Notes,
	})
}

// FallbackLink builds the manual-contact link for a request whose persistence
// failed, so the guest can still reach out directly.
func (s *BookingService) FallbackLink(req BookingRequest) string {
	return s.buildLink(req, CalculateTotal(req.AddOns))
}

// ListAll returns every booking, newest first, for the admin dashboard.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) Count() (int64, error) {
	var n int64
	if err := s.DB.Model(&models.Booking{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus transitions a booking between pending, confirmed and
// cancelled. Cancelling releases the day's slot exactly once; moving back out
// of cancelled re-reserves it, and fails with ErrSlotUnavailable if the day
// has filled up in the meantime.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return nil, validationError("status must be pending, confirmed or cancelled")
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if booking.Status == status {
			return nil // idempotent
		}

		if status == models.BookingStatusCancelled {
			// Only bookings that actually won a slot give one back;
			// releasing for a row-less booking would free a slot held
			// by somebody else.
			if booking.SlotReserved {
				if err := releaseSlot(tx, booking.BookingDate); err != nil {
					return err
				}
				booking.SlotReserved = false
			}
		} else if booking.Status == models.BookingStatusCancelled {
			res := tx.Model(&models.AvailabilityDay{}).
				Where("date = ? AND current_bookings < max_bookings AND is_available = ?", booking.BookingDate, true).
				UpdateColumn("current_bookings", gorm.Expr("current_bookings + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				booking.SlotReserved = true
			} else {
				var dayCount int64
				if err := tx.Model(&models.AvailabilityDay{}).Where("date = ?", booking.BookingDate).Count(&dayCount).Error; err != nil {
					return err
				}
				if dayCount > 0 {
					return ErrSlotUnavailable
				}
				// Still no calendar row for the date; the booking stays
				// unaccounted, same as when it was created.
			}
		}

		booking.Status = status
		return tx.Model(&booking).Updates(map[string]interface{}{
			"status":        status,
			"slot_reserved": booking.SlotReserved,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
