package services

import (
	"errors"
	"fmt"
	"time"

	"vhotelok-backend/errs"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"

	"gorm.io/gorm"
)

const defaultPerPage = 5

// validateStayDates rejects ranges where check-out does not come after
// check-in. Hotel search, room listing and booking creation all share it.
func validateStayDates(dateFrom, dateTo time.Time) error {
	if !dateFrom.Before(dateTo) {
		return errs.ErrDatesOrder
	}
	return nil
}

type HotelService struct {
	hotels *repositories.HotelRepository
}

func NewHotelService(store *repositories.Store) *HotelService {
	return &HotelService{hotels: store.Hotels}
}

// Search lists hotels having at least one free room for the stay,
// optionally filtered by title and location substrings.
func (s *HotelService) Search(title, location string, dateFrom, dateTo time.Time, page, perPage int) ([]models.Hotel, error) {
	if err := validateStayDates(dateFrom, dateTo); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	hotels, err := s.hotels.SearchAvailable(repositories.HotelSearch{
		Title:    title,
		Location: location,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    perPage,
		Offset:   perPage * (page - 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetHotel(id uint) (*models.Hotel, error) {
	hotel, err := s.hotels.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) Create(title, location string) (*models.Hotel, error) {
	hotel := &models.Hotel{Title: title, Location: location}
	if err := s.hotels.Create(hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return hotel, nil
}

// Update replaces every field of an existing hotel.
func (s *HotelService) Update(id uint, title, location string) (*models.Hotel, error) {
	hotel, err := s.GetHotel(id)
	if err != nil {
		return nil, err
	}

	hotel.Title = title
	hotel.Location = location
	if err := s.hotels.Update(hotel); err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return hotel, nil
}

// UpdatePartial changes only the provided fields. An empty patch on an
// existing hotel is rejected; the existence check runs first so a
// missing hotel still yields 404.
func (s *HotelService) UpdatePartial(id uint, title, location *string) (*models.Hotel, error) {
	hotel, err := s.GetHotel(id)
	if err != nil {
		return nil, err
	}
	if title == nil && location == nil {
		return nil, errs.ErrNoDataToUpdate
	}

	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
		hotel.Title = *title
	}
	if location != nil {
		updates["location"] = *location
		hotel.Location = *location
	}
	if err := s.hotels.UpdateFields(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) Delete(id uint) error {
	if _, err := s.GetHotel(id); err != nil {
		return err
	}
	if err := s.hotels.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.ErrRelatedRecordsExist
		}
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return nil
}
