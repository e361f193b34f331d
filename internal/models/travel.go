package models

import "time"

// Travel represents a single travel journal entry, the sole persistent
// entity of the application.
type Travel struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Username     string    `json:"username" gorm:"index"` // creator's display identity, a client-supplied string
	SecretHash   string    `json:"-" gorm:"column:secret_hash"`
	Location     string    `json:"location,omitempty"`
	TravelType   string    `json:"travel_type,omitempty" gorm:"index"`
	Photos       string    `json:"photos,omitempty"`
	Body         string    `json:"body,omitempty"` // story & experience text
	LegacyThread string    `json:"-" gorm:"column:comments"`
	Like         int       `json:"like" gorm:"column:like;default:0"`
	RepostOf     *uint     `json:"repost_of,omitempty" gorm:"index"`
	Description  string    `json:"description,omitempty"` // human-readable repost back-reference
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TravelTypes are the journey type facets offered by the composer.
var TravelTypes = []string{
	"Adventure", "Relaxation", "Cultural", "Business",
	"Family", "Solo", "Question", "Opinion",
}

// CreateTravelRequest defines the request body for sharing a new journey
type CreateTravelRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	SecretKey  string `json:"secret_key" validate:"required,min=1"`
	Location   string `json:"location,omitempty"`
	TravelType string `json:"travel_type,omitempty" validate:"omitempty,oneof=Adventure Relaxation Cultural Business Family Solo Question Opinion"`
	Photos     string `json:"photos,omitempty" validate:"omitempty,url"`
	Body       string `json:"body,omitempty"`
	RepostID   uint   `json:"repost_id,omitempty"`
}

// UpdateTravelRequest defines the request body for the edit form. The
// listed fields replace the stored columns wholesale.
type UpdateTravelRequest struct {
	SecretKey  string `json:"secret_key" validate:"required"`
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Location   string `json:"location,omitempty"`
	TravelType string `json:"travel_type,omitempty" validate:"omitempty,oneof=Adventure Relaxation Cultural Business Family Solo Question Opinion"`
	Photos     string `json:"photos,omitempty" validate:"omitempty,url"`
	Body       string `json:"body,omitempty"`
}

// DeleteTravelRequest defines the request body for deleting a journey.
// Confirm must be true after the secret key validates; declining aborts
// with no mutation.
type DeleteTravelRequest struct {
	SecretKey string `json:"secret_key" validate:"required"`
	Confirm   bool   `json:"confirm"`
}
