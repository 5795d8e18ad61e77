package repository

import (
	"errors"
	"time"

	placedomain "stayhub-backend/internal/place/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// placeRepository implements PlaceRepository interface
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new instance of placeRepository
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

func (r *placeRepository) Create(place *placedomain.Place) error {
	place.ID = uuid.New().String()
	place.CreatedAt = time.Now()
	place.UpdatedAt = time.Now()
	return r.db.Create(place).Error
}

func (r *placeRepository) FindByID(id string) (*placedomain.Place, error) {
	var place placedomain.Place
	err := r.db.Where("id = ?", id).First(&place).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindAll() ([]placedomain.Place, error) {
	var places []placedomain.Place
	if err := r.db.Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByOwner(ownerID string) ([]placedomain.Place, error) {
	var places []placedomain.Place
	if err := r.db.Where("owner_id = ?", ownerID).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Update(place *placedomain.Place) error {
	place.UpdatedAt = time.Now()
	return r.db.Save(place).Error
}
