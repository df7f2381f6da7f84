package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	GuestName     string `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail    string `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestPhone    string `gorm:"column:guest_phone;size:50" json:"guest_phone"`

	BookingDate string `gorm:"column:booking_date;size:10;index" json:"booking_date"` // YYYY-MM-DD
	BookingTime string `gorm:"column:booking_time;size:50" json:"booking_time"`
	Guests      int    `gorm:"column:guests;default:2" json:"guests"`
	Occasion    string `gorm:"size:100" json:"occasion"`
	Location    string `gorm:"size:255" json:"location,omitempty"`

	// Catalog add-on ids, e.g. ["grazing","fruit"].
	AddOns datatypes.JSON `gorm:"column:add_ons" json:"add_ons,omitempty"`

	TotalAmount  float64 `gorm:"column:total_amount" json:"total_amount"`
	Notes        string  `gorm:"type:text" json:"notes,omitempty"`
	Status       string  `gorm:"size:32;default:pending;index" json:"status"`
	WhatsAppSent bool    `gorm:"column:whatsapp_sent;default:false" json:"whatsapp_sent"`

	// True only when this booking incremented current_bookings on its day.
	// Bookings accepted for dates without a calendar row never hold a slot,
	// so cancelling them must not release one.
	SlotReserved bool `gorm:"column:slot_reserved;default:false" json:"-"`
}
