package repository

import (
	"time"

	bookingdomain "stayhub-backend/internal/booking/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bookingRepository implements BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new instance of bookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

func (r *bookingRepository) Create(booking *bookingdomain.Booking) error {
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindByUser(userID string) ([]bookingdomain.Booking, error) {
	var bookings []bookingdomain.Booking
	err := r.db.Where("user_id = ?", userID).Preload("Place").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
