package controllers

import (
	"net/http"
	"strings"

	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

type FacilityRequest struct {
	Title string `json:"title" binding:"required"`
}

type FacilityController struct {
	facilities *services.FacilityService
}

func NewFacilityController(facilities *services.FacilityService) *FacilityController {
	return &FacilityController{facilities: facilities}
}

// List handles GET /facilities.
func (ctl *FacilityController) List(c *gin.Context) {
	facilities, err := ctl.facilities.List()
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, facilities)
}

// Create handles POST /facilities. Duplicate titles are rejected.
func (ctl *FacilityController) Create(c *gin.Context) {
	var req FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		utils.ValidationError(c, utils.Field("body", "title", "field cannot be blank"))
		return
	}

	facility, err := ctl.facilities.Create(req.Title)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKWithData(c, facility)
}
