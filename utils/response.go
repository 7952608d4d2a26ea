package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"vhotelok-backend/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// OK writes the bare success envelope used by write endpoints.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// OKWithData writes the success envelope carrying the affected record.
func OKWithData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "data": data})
}

// Detail writes the error envelope used across the API.
func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// Error renders a service error with the status errs assigns to it.
// Unexpected errors are logged and masked.
func Error(c *gin.Context, err error) {
	status := errs.Status(err)
	if status == http.StatusInternalServerError {
		logrus.Errorf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Detail(c, status, "internal server error")
		return
	}
	Detail(c, status, err.Error())
}

// ValidationField names one offending input in a 422 response.
type ValidationField struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Field builds a ValidationField for the given input section ("body",
// "query" or "path") and field name.
func Field(in, name, msg string) ValidationField {
	return ValidationField{Loc: []string{in, name}, Msg: msg, Type: "value_error"}
}

// ValidationError writes the 422 envelope whose detail is a list of
// per-field entries.
func ValidationError(c *gin.Context, fields ...ValidationField) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fields})
}

// BindError converts a JSON binding failure into the 422 list shape,
// naming each failed field in struct order.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]ValidationField, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, Field("body", toSnake(fe.Field()),
				"failed validation on the '"+fe.Tag()+"' rule"))
		}
		ValidationError(c, fields...)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		ValidationError(c, Field("body", typeErr.Field, "expected a value of type "+typeErr.Type.String()))
		return
	}

	ValidationError(c, Field("body", "", err.Error()))
}

// toSnake turns a Go struct field name into its json counterpart,
// e.g. DateFrom -> date_from, RoomID -> room_id.
func toSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
