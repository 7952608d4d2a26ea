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

// RoomInput carries the full set of writable room fields. FacilitiesIDs
// left nil means "do not touch facilities"; an empty non-nil slice
// detaches them all.
type RoomInput struct {
	Title         string
	Description   *string
	Price         int
	Quantity      int
	FacilitiesIDs []uint
}

// RoomPatch holds a partial update; nil fields stay unchanged.
type RoomPatch struct {
	Title         *string
	Description   *string
	Price         *int
	Quantity      *int
	FacilitiesIDs []uint
}

func (p RoomPatch) empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Quantity == nil && p.FacilitiesIDs == nil
}

type RoomService struct {
	store *repositories.Store
}

func NewRoomService(store *repositories.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) checkHotel(hotelID uint) error {
	if _, err := s.store.Hotels.GetByID(hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrHotelNotFound
		}
		return fmt.Errorf("failed to fetch hotel: %w", err)
	}
	return nil
}

func (s *RoomService) checkFacilities(ids []uint) error {
	found, err := s.store.Facilities.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to fetch facilities: %w", err)
	}
	if len(found) != len(ids) {
		return errs.ErrFacilityNotFound
	}
	return nil
}

// ListAvailable returns the hotel's rooms that still have free capacity
// for the stay.
func (s *RoomService) ListAvailable(hotelID uint, dateFrom, dateTo time.Time) ([]models.Room, error) {
	if err := s.checkHotel(hotelID); err != nil {
		return nil, err
	}
	if err := validateStayDates(dateFrom, dateTo); err != nil {
		return nil, err
	}

	rooms, err := s.store.Rooms.ListAvailableForHotel(hotelID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(hotelID, roomID uint) (*models.Room, error) {
	if err := s.checkHotel(hotelID); err != nil {
		return nil, err
	}

	room, err := s.store.Rooms.GetForHotel(hotelID, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Create(hotelID uint, in RoomInput) (*models.Room, error) {
	if err := s.checkHotel(hotelID); err != nil {
		return nil, err
	}
	if len(in.FacilitiesIDs) > 0 {
		if err := s.checkFacilities(in.FacilitiesIDs); err != nil {
			return nil, err
		}
	}

	room := &models.Room{
		HotelID:     hotelID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	err := s.store.WithTx(func(tx *repositories.Store) error {
		if err := tx.Rooms.Create(room); err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}
		if len(in.FacilitiesIDs) > 0 {
			if err := tx.Rooms.SyncFacilities(room.ID, in.FacilitiesIDs); err != nil {
				return fmt.Errorf("failed to attach facilities: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the response carries the facilities.
	return s.store.Rooms.GetForHotel(hotelID, room.ID)
}

// Update replaces every field of the room. A nil FacilitiesIDs keeps
// the current facility set.
func (s *RoomService) Update(hotelID, roomID uint, in RoomInput) (*models.Room, error) {
	if _, err := s.GetRoom(hotelID, roomID); err != nil {
		return nil, err
	}
	if in.FacilitiesIDs != nil {
		if err := s.checkFacilities(in.FacilitiesIDs); err != nil {
			return nil, err
		}
	}

	err := s.store.WithTx(func(tx *repositories.Store) error {
		fields := map[string]interface{}{
			"title":       in.Title,
			"description": in.Description,
			"price":       in.Price,
			"quantity":    in.Quantity,
		}
		if err := tx.Rooms.UpdateFields(roomID, fields); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}
		if in.FacilitiesIDs != nil {
			if err := tx.Rooms.SyncFacilities(roomID, in.FacilitiesIDs); err != nil {
				return fmt.Errorf("failed to sync facilities: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Rooms.GetForHotel(hotelID, roomID)
}

// UpdatePartial changes only the provided fields. The existence checks
// run before the empty-patch check so missing records still yield 404.
func (s *RoomService) UpdatePartial(hotelID, roomID uint, patch RoomPatch) (*models.Room, error) {
	if _, err := s.GetRoom(hotelID, roomID); err != nil {
		return nil, err
	}
	if patch.empty() {
		return nil, errs.ErrNoDataToUpdate
	}
	if patch.FacilitiesIDs != nil {
		if err := s.checkFacilities(patch.FacilitiesIDs); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		fields["quantity"] = *patch.Quantity
	}

	err := s.store.WithTx(func(tx *repositories.Store) error {
		if len(fields) > 0 {
			if err := tx.Rooms.UpdateFields(roomID, fields); err != nil {
				return fmt.Errorf("failed to update room: %w", err)
			}
		}
		if patch.FacilitiesIDs != nil {
			if err := tx.Rooms.SyncFacilities(roomID, patch.FacilitiesIDs); err != nil {
				return fmt.Errorf("failed to sync facilities: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Rooms.GetForHotel(hotelID, roomID)
}

// Delete removes the room together with its facility links. Rooms with
// bookings are protected by the foreign key and rejected.
func (s *RoomService) Delete(hotelID, roomID uint) error {
	if _, err := s.GetRoom(hotelID, roomID); err != nil {
		return err
	}

	err := s.store.WithTx(func(tx *repositories.Store) error {
		if err := tx.Rooms.SyncFacilities(roomID, []uint{}); err != nil {
			return fmt.Errorf("failed to detach facilities: %w", err)
		}
		return tx.Rooms.Delete(hotelID, roomID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.ErrRelatedRecordsExist
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
