package usecase

import (
	"stayhub-backend/internal/authz"
	placedomain "stayhub-backend/internal/place/domain"
	placedto "stayhub-backend/internal/place/dto"
	"stayhub-backend/internal/place/repository"
)

// placeUsecase implements PlaceUsecase interface
type placeUsecase struct {
	placeRepo repository.PlaceRepository
}

// NewPlaceUsecase creates a new instance of placeUsecase
func NewPlaceUsecase(placeRepo repository.PlaceRepository) PlaceUsecase {
	return &placeUsecase{
		placeRepo: placeRepo,
	}
}

func (u *placeUsecase) Create(ownerID string, req *placedto.PlaceRequest) (*placedomain.Place, error) {
	if !authz.CanAccess(authz.KindPlace, authz.ActionCreate, ownerID, "") {
		return nil, ErrForbidden
	}

	place := &placedomain.Place{
		OwnerID:     ownerID,
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.Photos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
	}

	if err := u.placeRepo.Create(place); err != nil {
		return nil, err
	}

	return place, nil
}

func (u *placeUsecase) GetByID(id string) (*placedomain.Place, error) {
	place, err := u.placeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if place == nil {
		return nil, ErrPlaceNotFound
	}

	return place, nil
}

func (u *placeUsecase) ListAll(callerID string) ([]placedomain.Place, error) {
	if !authz.CanAccess(authz.KindPlace, authz.ActionListAll, callerID, "") {
		return nil, ErrForbidden
	}
	return u.placeRepo.FindAll()
}

// ListByOwner applies the ownership filter at query time; other users'
// places are never loaded.
func (u *placeUsecase) ListByOwner(callerID string) ([]placedomain.Place, error) {
	if !authz.CanAccess(authz.KindPlace, authz.ActionListMine, callerID, callerID) {
		return nil, ErrForbidden
	}
	return u.placeRepo.FindByOwner(callerID)
}

func (u *placeUsecase) Update(callerID, placeID string, req *placedto.PlaceRequest) (*placedomain.Place, error) {
	place, err := u.placeRepo.FindByID(placeID)
	if err != nil {
		return nil, err
	}

	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if !authz.CanAccess(authz.KindPlace, authz.ActionUpdate, callerID, place.OwnerID) {
		return nil, ErrForbidden
	}

	// merge request fields; OwnerID is never touched
	place.Title = req.Title
	place.Address = req.Address
	place.Photos = req.Photos
	place.Description = req.Description
	place.Perks = req.Perks
	place.ExtraInfo = req.ExtraInfo
	place.CheckIn = req.CheckIn
	place.CheckOut = req.CheckOut
	place.MaxGuests = req.MaxGuests
	place.Price = req.Price

	if err := u.placeRepo.Update(place); err != nil {
		return nil, err
	}

	return place, nil
}
