package repositories

import (
	"vhotelok-backend/models"

	"gorm.io/gorm"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) List() ([]models.Facility, error) {
	facilities := make([]models.Facility, 0)
	err := r.db.Order("id").Find(&facilities).Error
	return facilities, err
}

func (r *FacilityRepository) GetByIDs(ids []uint) ([]models.Facility, error) {
	facilities := make([]models.Facility, 0, len(ids))
	if len(ids) == 0 {
		return facilities, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&facilities).Error
	return facilities, err
}

func (r *FacilityRepository) Create(facility *models.Facility) error {
	return r.db.Create(facility).Error
}
