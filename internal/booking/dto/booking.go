package dto

// BookingRequest carries client-supplied booking fields. The booking
// user is never part of the request; it comes from the session identity.
// Dates arrive as YYYY-MM-DD strings from the date picker.
type BookingRequest struct {
	PlaceID        string  `json:"place" binding:"required"`
	CheckIn        string  `json:"checkIn" binding:"required"`
	CheckOut       string  `json:"checkOut" binding:"required"`
	NumberOfGuests int     `json:"numberOfGuests" binding:"required,min=1"`
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Price          float64 `json:"price" binding:"omitempty,min=0"`
}
