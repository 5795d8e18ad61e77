package repository

import (
	bookingdomain "stayhub-backend/internal/booking/domain"
)

type BookingRepository interface {
	Create(booking *bookingdomain.Booking) error
	FindByUser(userID string) ([]bookingdomain.Booking, error)
}
