package controllers

import (
	"net/http"
	"strings"

	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

// RoomRequest is the full-write body for POST and PUT. Price and
// quantity are pointers so a literal zero still counts as provided.
type RoomRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	Price         *int    `json:"price" binding:"required"`
	Quantity      *int    `json:"quantity" binding:"required"`
	FacilitiesIDs []uint  `json:"facilities_ids"`
}

type RoomPatchRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Price         *int    `json:"price"`
	Quantity      *int    `json:"quantity"`
	FacilitiesIDs []uint  `json:"facilities_ids"`
}

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// List handles GET /hotels/:hotel_id/rooms: rooms of the hotel with
// free capacity inside the stay window.
func (ctl *RoomController) List(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
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

	rooms, err := ctl.rooms.ListAvailable(hotelID, dateFrom, dateTo)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Get handles GET /hotels/:hotel_id/rooms/:room_id.
func (ctl *RoomController) Get(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "room_id")
	if !ok {
		return
	}

	room, err := ctl.rooms.GetRoom(hotelID, roomID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Create handles POST /hotels/:hotel_id/rooms.
func (ctl *RoomController) Create(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	req, ok := bindRoomRequest(c)
	if !ok {
		return
	}

	room, err := ctl.rooms.Create(hotelID, services.RoomInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         *req.Price,
		Quantity:      *req.Quantity,
		FacilitiesIDs: req.FacilitiesIDs,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, room)
}

// Update handles PUT /hotels/:hotel_id/rooms/:room_id.
func (ctl *RoomController) Update(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "room_id")
	if !ok {
		return
	}
	req, ok := bindRoomRequest(c)
	if !ok {
		return
	}

	_, err := ctl.rooms.Update(hotelID, roomID, services.RoomInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         *req.Price,
		Quantity:      *req.Quantity,
		FacilitiesIDs: req.FacilitiesIDs,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}

// Patch handles PATCH /hotels/:hotel_id/rooms/:room_id.
func (ctl *RoomController) Patch(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "room_id")
	if !ok {
		return
	}

	var req RoomPatchRequest
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

	_, err := ctl.rooms.UpdatePartial(hotelID, roomID, services.RoomPatch{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Quantity:      req.Quantity,
		FacilitiesIDs: req.FacilitiesIDs,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}

// Delete handles DELETE /hotels/:hotel_id/rooms/:room_id.
func (ctl *RoomController) Delete(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "room_id")
	if !ok {
		return
	}

	if err := ctl.rooms.Delete(hotelID, roomID); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}

func bindRoomRequest(c *gin.Context) (RoomRequest, bool) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return req, false
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.ValidationError(c, utils.Field("body", "title", "field cannot be blank"))
		return req, false
	}
	return req, true
}
