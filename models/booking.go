package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking snapshots the user, shop, service and barber names (and the
// service price) at creation time. The snapshots are never recomputed
// from the live records, so a later price edit does not touch existing
// bookings.
type Booking struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName     string        `json:"user_name"`
	ShopID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"shop_id"`
	ShopName     string        `json:"shop_name"`
	ServiceID    uuid.UUID     `gorm:"type:uuid;not null" json:"service_id"`
	ServiceName  string        `json:"service_name"`
	ServicePrice float64       `json:"service_price"`
	BarberID     *uuid.UUID    `gorm:"type:uuid" json:"barber_id,omitempty"`
	BarberName   string        `json:"barber_name,omitempty"`
	Date         string        `gorm:"not null" json:"date"` // calendar date, e.g. "Jan 02, 2006"
	Time         string        `gorm:"not null" json:"time"` // slot label, e.g. "10:00 AM"
	Status       BookingStatus `gorm:"default:confirmed" json:"status"`
	BookedAt     time.Time     `json:"booked_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.BookedAt.IsZero() {
		b.BookedAt = time.Now()
	}
	return nil
}

// AllowedBookingTransitions defines the booking status state machine.
// Barbers accept pending requests and can cancel or reinstate.
var AllowedBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: {BookingStatusConfirmed},
}

// IsValidBookingTransition checks if a status transition is allowed.
func IsValidBookingTransition(from, to BookingStatus) bool {
	allowed, exists := AllowedBookingTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
