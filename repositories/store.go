package repositories

import (
	"gorm.io/gorm"
)

// Store bundles the per-entity repositories behind one database handle so
// services can reach every table through a single dependency.
type Store struct {
	db *gorm.DB

	Hotels     *HotelRepository
	Rooms      *RoomRepository
	Users      *UserRepository
	Bookings   *BookingRepository
	Facilities *FacilityRepository
	Images     *ImageRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Hotels:     NewHotelRepository(db),
		Rooms:      NewRoomRepository(db),
		Users:      NewUserRepository(db),
		Bookings:   NewBookingRepository(db),
		Facilities: NewFacilityRepository(db),
		Images:     NewImageRepository(db),
	}
}

// WithTx runs fn with a Store bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
