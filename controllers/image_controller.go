package controllers

import (
	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

// Upload handles POST /images. Expects a multipart form with a "file"
// part; resized variants are produced in the background.
func (ctl *ImageController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ValidationError(c, utils.Field("body", "file", "field required"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, err)
		return
	}
	defer src.Close()

	if _, err := ctl.images.Upload(fileHeader.Filename, src); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}
