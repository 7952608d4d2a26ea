package repositories

import (
	"time"

	"vhotelok-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// AvailableIDs returns the ids of rooms with free capacity inside the stay
// window, optionally narrowed to one hotel.
func (r *RoomRepository) AvailableIDs(dateFrom, dateTo time.Time, hotelID *uint) ([]uint, error) {
	sql := availableRoomIDsSQL
	args := []interface{}{dateTo, dateFrom}
	if hotelID != nil {
		sql += " AND room_id IN (SELECT id FROM rooms WHERE hotel_id = ?)"
		args = append(args, *hotelID)
	}

	var ids []uint
	if err := r.db.Raw(sql, args...).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListAvailableForHotel returns the hotel's rooms that still have capacity
// inside the window, with facilities preloaded.
func (r *RoomRepository) ListAvailableForHotel(hotelID uint, dateFrom, dateTo time.Time) ([]models.Room, error) {
	ids, err := r.AvailableIDs(dateFrom, dateTo, &hotelID)
	if err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(ids))
	if len(ids) == 0 {
		return rooms, nil
	}
	err = r.db.Preload("Facilities").Where("id IN ?", ids).Order("id").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.Preload("Facilities").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetForHotel(hotelID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Preload("Facilities").
		Where("hotel_id = ? AND id = ?", hotelID, roomID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// LockByID takes a row lock on the room so concurrent availability checks
// for the same room serialize. Must run inside a transaction.
func (r *RoomRepository) LockByID(id uint) (*models.Room, error) {
	q := r.db
	// SQLite has no SELECT ... FOR UPDATE; its single-writer transactions
	// already serialize the check.
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room models.Room
	if err := q.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Omit(clause.Associations).Create(room).Error
}

// UpdateFields applies a partial update by column name.
func (r *RoomRepository) UpdateFields(roomID uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Room{}).Where("id = ?", roomID).Updates(fields).Error
}

func (r *RoomRepository) Delete(hotelID, roomID uint) error {
	return r.db.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID).Error
}

// SyncFacilities reconciles the room's join rows against wanted: rows for
// missing ids are inserted, rows no longer wanted are removed, and the
// intersection is left untouched.
func (r *RoomRepository) SyncFacilities(roomID uint, wanted []uint) error {
	var current []uint
	err := r.db.Model(&models.RoomFacility{}).
		Where("room_id = ?", roomID).
		Pluck("facility_id", &current).Error
	if err != nil {
		return err
	}

	toDelete := diffIDs(current, wanted)
	toInsert := diffIDs(wanted, current)

	if len(toDelete) > 0 {
		err = r.db.Where("room_id = ? AND facility_id IN ?", roomID, toDelete).
			Delete(&models.RoomFacility{}).Error
		if err != nil {
			return err
		}
	}

	if len(toInsert) > 0 {
		rows := make([]models.RoomFacility, 0, len(toInsert))
		for _, facilityID := range toInsert {
			rows = append(rows, models.RoomFacility{RoomID: roomID, FacilityID: facilityID})
		}
		if err := r.db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// diffIDs returns the ids present in a but not in b, deduplicated.
func diffIDs(a, b []uint) []uint {
	seen := make(map[uint]struct{}, len(b))
	for _, id := range b {
		seen[id] = struct{}{}
	}

	out := make([]uint, 0, len(a))
	for _, id := range a {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
