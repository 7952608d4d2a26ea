package services

import (
	"context"
	"testing"
	"time"

	"vhotelok-backend/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_CreateUntilSoldOut(t *testing.T) {
	store := newTestStore(t)
	svc := NewBookingService(store, newTestMailer())

	hotel := seedHotel(t, store)
	room := seedRoom(t, store, hotel.ID, 100, 5)
	user := seedUser(t, store)

	from, to := day(t, "2025-08-01"), day(t, "2025-08-10")
	for i := 0; i < 5; i++ {
		booking, err := svc.Create(user.ID, room.ID, from, to)
		require.NoError(t, err, "unit %d of 5 should fit", i+1)
		assert.Equal(t, room.ID, booking.RoomID)
		assert.Equal(t, user.ID, booking.UserID)
	}

	_, err := svc.Create(user.ID, room.ID, from, to)
	assert.ErrorIs(t, err, errs.ErrAllRoomsAreBooked)

	// A non-overlapping stay still fits.
	_, err = svc.Create(user.ID, room.ID, day(t, "2025-08-11"), day(t, "2025-08-15"))
	require.NoError(t, err)
}

func TestBookingService_CreateValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewBookingService(store, newTestMailer())

	hotel := seedHotel(t, store)
	room := seedRoom(t, store, hotel.ID, 100, 1)
	user := seedUser(t, store)

	_, err := svc.Create(user.ID, room.ID, day(t, "2025-08-10"), day(t, "2025-08-01"))
	assert.ErrorIs(t, err, errs.ErrDatesOrder)

	_, err = svc.Create(user.ID, room.ID+100, day(t, "2025-08-01"), day(t, "2025-08-10"))
	assert.ErrorIs(t, err, errs.ErrRoomNotFound)
}

func TestBookingService_CreateSnapshotsPrice(t *testing.T) {
	store := newTestStore(t)
	svc := NewBookingService(store, newTestMailer())

	hotel := seedHotel(t, store)
	room := seedRoom(t, store, hotel.ID, 150, 1)
	user := seedUser(t, store)

	booking, err := svc.Create(user.ID, room.ID, day(t, "2025-08-01"), day(t, "2025-08-04"))
	require.NoError(t, err)
	assert.Equal(t, 150, booking.Price)
	assert.Equal(t, 450, booking.TotalCost, "3 nights at the room price")

	// Later price changes must not affect existing bookings.
	require.NoError(t, store.Rooms.UpdateFields(room.ID, map[string]interface{}{"price": 999}))
	bookings, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 150, bookings[0].Price)
	assert.Equal(t, 450, bookings[0].TotalCost)
}

func TestBookingService_List(t *testing.T) {
	store := newTestStore(t)
	svc := NewBookingService(store, newTestMailer())

	hotel := seedHotel(t, store)
	room := seedRoom(t, store, hotel.ID, 100, 5)
	alice := seedUser(t, store)
	bob := seedUser(t, store)

	_, err := svc.Create(alice.ID, room.ID, day(t, "2025-08-01"), day(t, "2025-08-03"))
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, room.ID, day(t, "2025-08-01"), day(t, "2025-08-03"))
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].UserID)
}

func TestBookingService_SendTodayCheckInReminders(t *testing.T) {
	store := newTestStore(t)
	svc := NewBookingService(store, newTestMailer())

	hotel := seedHotel(t, store)
	room := seedRoom(t, store, hotel.ID, 100, 5)
	user := seedUser(t, store)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	_, err := svc.Create(user.ID, room.ID, today, today.AddDate(0, 0, 2))
	require.NoError(t, err)

	// The mailer runs in mock mode; the pass must complete without touching
	// the network.
	svc.SendTodayCheckInReminders(context.Background())
}
