package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingDraft is the in-progress slot selection a customer builds up
// while stepping through the booking flow. One row per user; every
// field except the key is nullable, and a reset clears them all.
type BookingDraft struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primary_key" json:"user_id"`
	ShopID    *uuid.UUID `gorm:"type:uuid" json:"shop_id"`
	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	BarberID  *uuid.UUID `gorm:"type:uuid" json:"barber_id"`
	Date      *string    `json:"date"`
	Time      *string    `json:"time"`
	UpdatedAt time.Time  `json:"updated_at"`
}
