package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is a barbershop listing. Curated catalog shops are seeded with no
// owner; shops created through barber onboarding carry the owning user's
// id and start unapproved. Rejection removes the row entirely, so there
// is no soft delete here.
type Shop struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID       *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Name          string     `gorm:"not null;index" json:"name"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Image         string     `json:"image"`
	Description   string     `json:"description"`
	Specialties   string     `json:"specialties,omitempty"`
	UniquePoints  string     `json:"unique_points,omitempty"`
	StartingPrice float64    `gorm:"default:0" json:"starting_price"`
	PriceRange    float64    `gorm:"default:0" json:"price_range"`
	Rating        float64    `gorm:"default:0" json:"rating"`
	ReviewCount   int        `gorm:"default:0" json:"review_count"`
	Approved      bool       `gorm:"default:false;index" json:"approved"`
	Services      []Service  `gorm:"foreignKey:ShopID" json:"services"`
	Barbers       []Barber   `gorm:"foreignKey:ShopID" json:"barbers"`
	Reviews       []Review   `gorm:"foreignKey:ShopID" json:"reviews,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Service is a bookable offering owned by exactly one shop.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Barber is an individual stylist on a shop's staff, distinct from the
// barber user role. Seed data only; no management endpoints.
type Barber struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name      string    `gorm:"not null" json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
