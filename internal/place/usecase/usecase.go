package usecase

import (
	"errors"

	placedomain "stayhub-backend/internal/place/domain"
	placedto "stayhub-backend/internal/place/dto"
)

var (
	ErrPlaceNotFound = errors.New("place not found")
	// ErrForbidden means the caller is authenticated but does not own
	// the resource. Maps to 403, distinct from 401.
	ErrForbidden = errors.New("caller does not own this place")
)

type PlaceUsecase interface {
	Create(ownerID string, req *placedto.PlaceRequest) (*placedomain.Place, error)
	GetByID(id string) (*placedomain.Place, error)
	ListAll(callerID string) ([]placedomain.Place, error)
	ListByOwner(callerID string) ([]placedomain.Place, error)
	Update(callerID, placeID string, req *placedto.PlaceRequest) (*placedomain.Place, error)
}
