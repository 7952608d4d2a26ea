package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"vhotelok-backend/config"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"
	"vhotelok-backend/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return repositories.NewStore(db)
}

func testSettings() config.Settings {
	return config.Settings{
		JWTSecretKey:             "test-secret",
		AccessTokenExpireMinutes: 30,
	}
}

// newTestMailer has no SMTP host, so sends are logged instead of mailed.
func newTestMailer() *utils.Mailer {
	return utils.NewMailer(config.Settings{})
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func seedHotel(t *testing.T, store *repositories.Store) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{Title: gofakeit.Company(), Location: gofakeit.City()}
	require.NoError(t, store.Hotels.Create(hotel))
	return hotel
}

func seedRoom(t *testing.T, store *repositories.Store, hotelID uint, price, quantity int) *models.Room {
	t.Helper()
	room := &models.Room{HotelID: hotelID, Title: gofakeit.Word(), Price: price, Quantity: quantity}
	require.NoError(t, store.Rooms.Create(room))
	return room
}

func seedUser(t *testing.T, store *repositories.Store) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:      gofakeit.FirstName(),
		LastName:       gofakeit.LastName(),
		Username:       gofakeit.Username(),
		Email:          gofakeit.Email(),
		HashedPassword: gofakeit.UUID(),
	}
	require.NoError(t, store.Users.Create(user))
	return user
}

func seedFacility(t *testing.T, store *repositories.Store, title string) *models.Facility {
	t.Helper()
	facility := &models.Facility{Title: title}
	require.NoError(t, store.Facilities.Create(facility))
	return facility
}
