package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vhotelok-backend/errs"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"
	"vhotelok-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BookingService struct {
	store  *repositories.Store
	mailer *utils.Mailer
}

func NewBookingService(store *repositories.Store, mailer *utils.Mailer) *BookingService {
	return &BookingService{store: store, mailer: mailer}
}

func (s *BookingService) List() ([]models.Booking, error) {
	bookings, err := s.store.Bookings.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	bookings, err := s.store.Bookings.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Create books a room for the stay. The room row is locked and the
// availability re-checked inside the transaction, so two concurrent
// requests cannot oversell the last unit.
func (s *BookingService) Create(userID, roomID uint, dateFrom, dateTo time.Time) (*models.Booking, error) {
	if err := validateStayDates(dateFrom, dateTo); err != nil {
		return nil, err
	}

	room, err := s.store.Rooms.GetByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}

	booking := &models.Booking{
		RoomID:   roomID,
		UserID:   userID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Price:    room.Price,
	}
	err = s.store.WithTx(func(tx *repositories.Store) error {
		if _, err := tx.Rooms.LockByID(roomID); err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		available, err := tx.Rooms.AvailableIDs(dateFrom, dateTo, &room.HotelID)
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if !containsID(available, roomID) {
			return errs.ErrAllRoomsAreBooked
		}

		return tx.Bookings.Create(booking)
	})
	if err != nil {
		return nil, err
	}

	booking.TotalCost = booking.Nights() * booking.Price
	return booking, nil
}

// SendTodayCheckInReminders mails every guest whose stay starts today.
// The scheduler runs it once a day.
func (s *BookingService) SendTodayCheckInReminders(ctx context.Context) {
	bookings, err := s.store.Bookings.WithTodayCheckIn()
	if err != nil {
		logrus.Errorf("❌ failed to load today's check-ins: %v", err)
		return
	}
	if len(bookings) == 0 {
		logrus.Info("no check-ins scheduled for today")
		return
	}

	sent := 0
	for _, booking := range bookings {
		if ctx.Err() != nil {
			return
		}
		if booking.User.Email == "" {
			continue
		}

		name := strings.TrimSpace(booking.User.FirstName + " " + booking.User.LastName)
		if name == "" {
			name = booking.User.Username
		}

		err := s.mailer.SendCheckInReminder(
			booking.User.Email,
			name,
			booking.Room.Hotel.Title,
			booking.Room.Title,
			booking.DateFrom,
			booking.DateTo,
		)
		if err != nil {
			logrus.Errorf("❌ check-in reminder for booking %d failed: %v", booking.ID, err)
			continue
		}
		sent++
	}
	logrus.Infof("✅ check-in reminders sent: %d of %d", sent, len(bookings))
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
