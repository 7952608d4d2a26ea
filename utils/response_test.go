package utils

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vhotelok-backend/errs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
}

func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"Title":     "title",
		"Email":     "email",
		"DateFrom":  "date_from",
		"FirstName": "first_name",
		"RoomID":    "room_id",
	}
	for in, want := range cases {
		assert.Equalf(t, want, toSnake(in), "toSnake(%q)", in)
	}
}

func TestEnvelopes(t *testing.T) {
	c, w := newTestContext(t, "")
	OK(c)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())

	c, w = newTestContext(t, "")
	OKWithData(c, gin.H{"id": 7})
	assert.JSONEq(t, `{"status":"OK","data":{"id":7}}`, w.Body.String())

	c, w = newTestContext(t, "")
	Detail(c, http.StatusTeapot, "short and stout")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"detail":"short and stout"}`, w.Body.String())
}

func TestError_KnownErrorKeepsItsMessage(t *testing.T) {
	c, w := newTestContext(t, "")
	Error(c, errs.ErrHotelNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"hotel not found"}`, w.Body.String())
}

func TestError_UnknownErrorIsMasked(t *testing.T) {
	c, w := newTestContext(t, "")
	Error(c, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestBindError_RequiredFields(t *testing.T) {
	type loginBody struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	c, w := newTestContext(t, `{}`)
	var body loginBody
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"loc":["body","email"]`)
	assert.Contains(t, w.Body.String(), `"loc":["body","password"]`)
	assert.Contains(t, w.Body.String(), "'required' rule")
	assert.Contains(t, w.Body.String(), `"type":"value_error"`)
}

func TestBindError_EmailRule(t *testing.T) {
	type loginBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	c, w := newTestContext(t, `{"email":"test2@api"}`)
	var body loginBody
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"loc":["body","email"]`)
	assert.Contains(t, w.Body.String(), "'email' rule")
}

func TestBindError_TypeMismatch(t *testing.T) {
	type bookingBody struct {
		RoomID uint `json:"room_id"`
	}

	c, w := newTestContext(t, `{"room_id":"seven"}`)
	var body bookingBody
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"loc":["body","room_id"]`)
	assert.Contains(t, w.Body.String(), "expected a value of type uint")
}

func TestBindError_MalformedJSON(t *testing.T) {
	c, w := newTestContext(t, `{"title":`)
	var body struct {
		Title string `json:"title" binding:"required"`
	}
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"detail":[`)
}
