package usecase

import (
	"time"

	"stayhub-backend/internal/authz"
	bookingdomain "stayhub-backend/internal/booking/domain"
	bookingdto "stayhub-backend/internal/booking/dto"
	"stayhub-backend/internal/booking/repository"
	placerepo "stayhub-backend/internal/place/repository"
)

const dateLayout = "2006-01-02"

// bookingUsecase implements BookingUsecase interface
type bookingUsecase struct {
	bookingRepo repository.BookingRepository
	placeRepo   placerepo.PlaceRepository
}

// NewBookingUsecase creates a new instance of bookingUsecase
func NewBookingUsecase(bookingRepo repository.BookingRepository, placeRepo placerepo.PlaceRepository) BookingUsecase {
	return &bookingUsecase{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
	}
}

// Create records a booking for the caller. There is deliberately no
// overlap check against existing bookings for the same place and date
// range; availability is first-come-first-served outside this service.
func (u *bookingUsecase) Create(userID string, req *bookingdto.BookingRequest) (*bookingdomain.Booking, error) {
	if !authz.CanAccess(authz.KindBooking, authz.ActionCreate, userID, "") {
		return nil, ErrForbidden
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrInvalidDates
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrInvalidDates
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	place, err := u.placeRepo.FindByID(req.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	booking := &bookingdomain.Booking{
		PlaceID:        req.PlaceID,
		UserID:         userID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          req.Price,
	}

	if err := u.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (u *bookingUsecase) ListByUser(callerID string) ([]bookingdomain.Booking, error) {
	if !authz.CanAccess(authz.KindBooking, authz.ActionListMine, callerID, callerID) {
		return nil, ErrForbidden
	}
	return u.bookingRepo.FindByUser(callerID)
}
