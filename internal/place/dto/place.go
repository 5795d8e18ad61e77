package dto

// PlaceRequest is the client-supplied part of a place. Ownership is
// intentionally absent: ownerId always comes from the session identity.
type PlaceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests" binding:"omitempty,min=1"`
	Price       float64  `json:"price" binding:"omitempty,min=0"`
}
