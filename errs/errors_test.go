package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrHotelNotFound, http.StatusNotFound},
		{ErrRoomNotFound, http.StatusNotFound},
		{ErrFacilityNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrObjectAlreadyExists, http.StatusConflict},
		{ErrAllRoomsAreBooked, http.StatusConflict},
		{ErrNoAccessToken, http.StatusUnauthorized},
		{ErrIncorrectToken, http.StatusUnauthorized},
		{ErrEmailNotRegistered, http.StatusUnauthorized},
		{ErrIncorrectPassword, http.StatusUnauthorized},
		{ErrDatesOrder, http.StatusUnprocessableEntity},
		{ErrNoDataToUpdate, http.StatusBadRequest},
		{ErrRelatedRecordsExist, http.StatusBadRequest},
		{ErrUnsupportedFileFormat, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Status(tc.err), "Status(%v)", tc.err)
	}
}

func TestStatus_WrappedErrorKeepsItsStatus(t *testing.T) {
	wrapped := fmt.Errorf("%w: use one of jpg, jpeg, png, webp", ErrUnsupportedFileFormat)
	assert.Equal(t, http.StatusBadRequest, Status(wrapped))
}

func TestStatus_UnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("disk on fire")))
}
