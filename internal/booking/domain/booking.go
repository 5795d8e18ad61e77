package domain

import (
	"time"

	placedomain "stayhub-backend/internal/place/domain"
)

// Booking records a stay. UserID is fixed to the creator and immutable.
// Overlapping date ranges on the same place are allowed on purpose:
// availability conflicts are resolved outside this service.
type Booking struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	PlaceID        string    `json:"placeId" gorm:"index"`
	UserID         string    `json:"userId" gorm:"index"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Place *placedomain.Place `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
}
