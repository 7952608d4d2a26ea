package repositories

import (
	"strings"
	"time"

	"vhotelok-backend/models"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// HotelSearch narrows the availability search. Title and Location are
// case-insensitive substring filters; empty means no filter.
type HotelSearch struct {
	Title    string
	Location string
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
	Offset   int
}

// SearchAvailable returns hotels with at least one free room inside the
// window, ordered by id and paginated.
func (r *HotelRepository) SearchAvailable(p HotelSearch) ([]models.Hotel, error) {
	var roomIDs []uint
	if err := r.db.Raw(availableRoomIDsSQL, p.DateTo, p.DateFrom).Scan(&roomIDs).Error; err != nil {
		return nil, err
	}

	hotels := make([]models.Hotel, 0)
	if len(roomIDs) == 0 {
		return hotels, nil
	}

	q := r.db.Model(&models.Hotel{}).
		Where("id IN (?)", r.db.Model(&models.Room{}).Select("hotel_id").Where("id IN ?", roomIDs))
	if p.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(p.Title)+"%")
	}
	if p.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(p.Location)+"%")
	}

	err := q.Order("id").Limit(p.Limit).Offset(p.Offset).Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

func (r *HotelRepository) Update(hotel *models.Hotel) error {
	return r.db.Save(hotel).Error
}

// UpdateFields applies a partial update by column name.
func (r *HotelRepository) UpdateFields(hotelID uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Hotel{}).Where("id = ?", hotelID).Updates(fields).Error
}

func (r *HotelRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hotel{}, id).Error
}
