package controllers

import (
	"net/http"
	"time"

	"vhotelok-backend/middleware"
	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	DateFrom string `json:"date_from" binding:"required"`
	DateTo   string `json:"date_to" binding:"required"`
}

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// List handles GET /bookings.
func (ctl *BookingController) List(c *gin.Context) {
	bookings, err := ctl.bookings.List()
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// My handles GET /bookings/me for the authenticated user.
func (ctl *BookingController) My(c *gin.Context) {
	bookings, err := ctl.bookings.ListForUser(middleware.UserID(c))
	if err != nil {
		utils.Error(c, err)
		return
	}
	if len(bookings) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "you have no bookings yet"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings.
func (ctl *BookingController) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	dateFrom, ok := parseBookingDate(c, "date_from", req.DateFrom)
	if !ok {
		return
	}
	dateTo, ok := parseBookingDate(c, "date_to", req.DateTo)
	if !ok {
		return
	}

	booking, err := ctl.bookings.Create(middleware.UserID(c), req.RoomID, dateFrom, dateTo)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, booking)
}

func parseBookingDate(c *gin.Context, name, raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		utils.ValidationError(c, utils.Field("body", name, "invalid date format, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return t, true
}
