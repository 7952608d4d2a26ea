package controllers

import (
	"net/http"
	"strings"

	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelRequest struct {
	Title    string `json:"title" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type HotelPatchRequest struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
}

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

// List handles GET /hotels: hotels with at least one free room for the
// stay, paginated and optionally filtered by title and location.
func (ctl *HotelController) List(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}
	dateFrom, ok := parseDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := parseDateQuery(c, "date_to")
	if !ok {
		return
	}

	hotels, err := ctl.hotels.Search(c.Query("title"), c.Query("location"), dateFrom, dateTo, page, perPage)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// Get handles GET /hotels/:hotel_id.
func (ctl *HotelController) Get(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}

	hotel, err := ctl.hotels.GetHotel(hotelID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// Create handles POST /hotels.
func (ctl *HotelController) Create(c *gin.Context) {
	req, ok := bindHotelRequest(c)
	if !ok {
		return
	}

	hotel, err := ctl.hotels.Create(req.Title, req.Location)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, hotel)
}

// Update handles PUT /hotels/:hotel_id.
func (ctl *HotelController) Update(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	req, ok := bindHotelRequest(c)
	if !ok {
		return
	}

	hotel, err := ctl.hotels.Update(hotelID, req.Title, req.Location)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, hotel)
}

// Patch handles PATCH /hotels/:hotel_id.
func (ctl *HotelController) Patch(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}

	var req HotelPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			utils.ValidationError(c, utils.Field("body", "title", "field cannot be blank"))
			return
		}
		req.Title = &trimmed
	}
	if req.Location != nil {
		trimmed := strings.TrimSpace(*req.Location)
		if trimmed == "" {
			utils.ValidationError(c, utils.Field("body", "location", "field cannot be blank"))
			return
		}
		req.Location = &trimmed
	}

	hotel, err := ctl.hotels.UpdatePartial(hotelID, req.Title, req.Location)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, hotel)
}

// Delete handles DELETE /hotels/:hotel_id.
func (ctl *HotelController) Delete(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}

	if err := ctl.hotels.Delete(hotelID); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}

// bindHotelRequest binds the full-write body and rejects blank strings
// after trimming.
func bindHotelRequest(c *gin.Context) (HotelRequest, bool) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return req, false
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if req.Title == "" {
		utils.ValidationError(c, utils.Field("body", "title", "field cannot be blank"))
		return req, false
	}
	if req.Location == "" {
		utils.ValidationError(c, utils.Field("body", "location", "field cannot be blank"))
		return req, false
	}
	return req, true
}
