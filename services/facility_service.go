package services

import (
	"errors"
	"fmt"
	"strings"

	"vhotelok-backend/errs"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"

	"gorm.io/gorm"
)

type FacilityService struct {
	facilities *repositories.FacilityRepository
}

func NewFacilityService(store *repositories.Store) *FacilityService {
	return &FacilityService{facilities: store.Facilities}
}

func (s *FacilityService) List() ([]models.Facility, error) {
	facilities, err := s.facilities.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	return facilities, nil
}

// Create adds a facility. Titles are unique; the constraint backs up
// the pre-check under concurrent inserts.
func (s *FacilityService) Create(title string) (*models.Facility, error) {
	title = strings.TrimSpace(title)

	existing, err := s.facilities.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	for _, f := range existing {
		if strings.EqualFold(f.Title, title) {
			return nil, errs.ErrObjectAlreadyExists
		}
	}

	facility := &models.Facility{Title: title}
	if err := s.facilities.Create(facility); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrObjectAlreadyExists
		}
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}
	return facility, nil
}
