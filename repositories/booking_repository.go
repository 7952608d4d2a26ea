package repositories

import (
	"time"

	"vhotelok-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) List() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := r.db.Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListForUser(userID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Omit(clause.Associations).Create(booking).Error
}

// WithTodayCheckIn returns bookings whose stay starts today (UTC), with
// the guest and room data the reminder email needs.
func (r *BookingRepository) WithTodayCheckIn() ([]models.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	bookings := make([]models.Booking, 0)
	err := r.db.
		Preload("User").
		Preload("Room").
		Preload("Room.Hotel").
		Where("date_from = ?", today).
		Find(&bookings).Error
	return bookings, err
}
