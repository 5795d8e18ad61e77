package usecase

import (
	"testing"

	bookingdomain "stayhub-backend/internal/booking/domain"
	bookingdto "stayhub-backend/internal/booking/dto"
	placedomain "stayhub-backend/internal/place/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingRepository struct {
	findByUserFn func(userID string) ([]bookingdomain.Booking, error)

	created []*bookingdomain.Booking
}

func (m *mockBookingRepository) Create(booking *bookingdomain.Booking) error {
	booking.ID = "generated-id"
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepository) FindByUser(userID string) ([]bookingdomain.Booking, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(userID)
	}
	return nil, nil
}

type mockPlaceRepository struct {
	findByIDFn func(id string) (*placedomain.Place, error)
}

func (m *mockPlaceRepository) Create(place *placedomain.Place) error { return nil }

func (m *mockPlaceRepository) FindByID(id string) (*placedomain.Place, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *mockPlaceRepository) FindAll() ([]placedomain.Place, error) { return nil, nil }

func (m *mockPlaceRepository) FindByOwner(ownerID string) ([]placedomain.Place, error) {
	return nil, nil
}

func (m *mockPlaceRepository) Update(place *placedomain.Place) error { return nil }

func existingPlace() *mockPlaceRepository {
	return &mockPlaceRepository{
		findByIDFn: func(id string) (*placedomain.Place, error) {
			return &placedomain.Place{ID: id, OwnerID: "host-1"}, nil
		},
	}
}

func bookingRequest() *bookingdto.BookingRequest {
	return &bookingdto.BookingRequest{
		PlaceID:        "place-1",
		CheckIn:        "2026-09-10",
		CheckOut:       "2026-09-14",
		NumberOfGuests: 2,
		Name:           "Alice",
		Phone:          "+1-555-0100",
		Price:          480,
	}
}

func TestCreateBooking_UserForcedToCaller(t *testing.T) {
	repo := &mockBookingRepository{}
	uc := NewBookingUsecase(repo, existingPlace())

	booking, err := uc.Create("guest-1", bookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "guest-1", booking.UserID)
	assert.Equal(t, "place-1", booking.PlaceID)
	assert.True(t, booking.CheckOut.After(booking.CheckIn))
	require.Len(t, repo.created, 1)
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	repo := &mockBookingRepository{}
	uc := NewBookingUsecase(repo, existingPlace())

	booking, err := uc.Create("", bookingRequest())

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_UnknownPlace(t *testing.T) {
	repo := &mockBookingRepository{}
	uc := NewBookingUsecase(repo, &mockPlaceRepository{})

	booking, err := uc.Create("guest-1", bookingRequest())

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_BadDates(t *testing.T) {
	repo := &mockBookingRepository{}
	uc := NewBookingUsecase(repo, existingPlace())

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"unparseable check-in", "next tuesday", "2026-09-14"},
		{"unparseable check-out", "2026-09-10", "soon"},
		{"check-out before check-in", "2026-09-14", "2026-09-10"},
		{"zero-night stay", "2026-09-10", "2026-09-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut

			booking, err := uc.Create("guest-1", req)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, ErrInvalidDates)
		})
	}
	assert.Empty(t, repo.created)
}

// Overlapping bookings on the same place are accepted by design.
func TestCreateBooking_OverlapAllowed(t *testing.T) {
	repo := &mockBookingRepository{}
	uc := NewBookingUsecase(repo, existingPlace())

	first, err := uc.Create("guest-1", bookingRequest())
	require.NoError(t, err)
	second, err := uc.Create("guest-2", bookingRequest())
	require.NoError(t, err)

	assert.Equal(t, first.PlaceID, second.PlaceID)
	assert.Len(t, repo.created, 2)
}

func TestListByUser_ScopedToCaller(t *testing.T) {
	var queriedUser string
	repo := &mockBookingRepository{
		findByUserFn: func(userID string) ([]bookingdomain.Booking, error) {
			queriedUser = userID
			return []bookingdomain.Booking{{ID: "b1", UserID: userID}}, nil
		},
	}
	uc := NewBookingUsecase(repo, existingPlace())

	bookings, err := uc.ListByUser("guest-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "guest-1", queriedUser)

	_, err = uc.ListByUser("")
	assert.ErrorIs(t, err, ErrForbidden)
}
