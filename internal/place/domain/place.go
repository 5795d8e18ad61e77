package domain

import "time"

// Place is a property listing. OwnerID is set from the verified identity
// at creation and never updated afterwards.
type Place struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	OwnerID     string    `json:"ownerId" gorm:"index"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	Photos      []string  `json:"photos" gorm:"serializer:json"`
	Description string    `json:"description"`
	Perks       []string  `json:"perks" gorm:"serializer:json"`
	ExtraInfo   string    `json:"extraInfo"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	MaxGuests   int       `json:"maxGuests"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
