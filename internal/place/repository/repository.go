package repository

import (
	placedomain "stayhub-backend/internal/place/domain"
)

type PlaceRepository interface {
	Create(place *placedomain.Place) error
	FindByID(id string) (*placedomain.Place, error)
	FindAll() ([]placedomain.Place, error)
	FindByOwner(ownerID string) ([]placedomain.Place, error)
	Update(place *placedomain.Place) error
}
