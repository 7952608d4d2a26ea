package errs

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by services and controllers. Controllers render
// them as {"detail": <message>} with the status from Status.
var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrFacilityNotFound = errors.New("facility not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrObjectAlreadyExists = errors.New("similar object already exists")
	ErrEmailAlreadyExists  = errors.New("user with this email already exists")
	ErrAllRoomsAreBooked   = errors.New("no rooms left")

	ErrNoAccessToken      = errors.New("access token not provided")
	ErrIncorrectToken     = errors.New("incorrect access token")
	ErrEmailNotRegistered = errors.New("user with this email is not registered")
	ErrIncorrectPassword  = errors.New("incorrect password")

	ErrDatesOrder            = errors.New("check-in date must be before check-out date")
	ErrNoDataToUpdate        = errors.New("no data to update")
	ErrRelatedRecordsExist   = errors.New("cannot delete: related records exist")
	ErrUnsupportedFileFormat = errors.New("unsupported file format")
)

// Status maps a service error to the HTTP status it should be served with.
// Unknown errors fall through to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrObjectNotFound),
		errors.Is(err, ErrHotelNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrFacilityNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrObjectAlreadyExists),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrAllRoomsAreBooked):
		return http.StatusConflict
	case errors.Is(err, ErrNoAccessToken),
		errors.Is(err, ErrIncorrectToken),
		errors.Is(err, ErrEmailNotRegistered),
		errors.Is(err, ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDatesOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNoDataToUpdate),
		errors.Is(err, ErrRelatedRecordsExist),
		errors.Is(err, ErrUnsupportedFileFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
