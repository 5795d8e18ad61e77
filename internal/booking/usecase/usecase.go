package usecase

import (
	"errors"

	bookingdomain "stayhub-backend/internal/booking/domain"
	bookingdto "stayhub-backend/internal/booking/dto"
)

var (
	ErrForbidden     = errors.New("caller may not access these bookings")
	ErrPlaceNotFound = errors.New("booked place not found")
	ErrInvalidDates  = errors.New("invalid booking dates")
)

type BookingUsecase interface {
	Create(userID string, req *bookingdto.BookingRequest) (*bookingdomain.Booking, error)
	ListByUser(callerID string) ([]bookingdomain.Booking, error)
}
