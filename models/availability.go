package models

import "time"

// AvailabilityDay is one bookable calendar day. A day can be booked while
// is_available is set and current_bookings < max_bookings.
type AvailabilityDay struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Date            string    `gorm:"column:date;uniqueIndex;size:10" json:"date"` // YYYY-MM-DD
	IsAvailable     bool      `gorm:"column:is_available;default:true" json:"is_available"`
	MaxBookings     int       `gorm:"column:max_bookings;default:1" json:"max_bookings"`
	CurrentBookings int       `gorm:"column:current_bookings;default:0" json:"current_bookings"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (AvailabilityDay) TableName() string {
	return "availability"
}

// Remaining slots, never negative.
func (a *AvailabilityDay) Remaining() int {
	r := a.MaxBookings - a.CurrentBookings
	if r < 0 {
		return 0
	}
	return r
}

func (a *AvailabilityDay) Bookable() bool {
	return a.IsAvailable && a.CurrentBookings < a.MaxBookings
}
