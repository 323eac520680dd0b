package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is append-only: reviews are never edited or deleted once posted.
// AuthorID is nil for reviews that ship with the curated catalog.
type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"shop_id"`
	AuthorID   *uuid.UUID `gorm:"type:uuid;index" json:"author_id,omitempty"`
	AuthorName string     `gorm:"not null" json:"author_name"`
	Rating     int        `gorm:"not null" json:"rating"` // 1-5
	Comment    string     `gorm:"not null" json:"comment"`
	Date       string     `gorm:"not null" json:"date"` // YYYY-MM-DD
	CreatedAt  time.Time  `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}
	return nil
}
