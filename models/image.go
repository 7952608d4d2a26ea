package models

import (
	"time"

	"gorm.io/datatypes"
)

// Image tracks an uploaded file under the media directory. Variants maps
// resize widths to file names and is filled in by the background worker
// after upload, e.g. {"1000": "pool_1000px.png", ...}.
type Image struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FileName  string         `gorm:"column:file_name;type:varchar(255);uniqueIndex;not null" json:"file_name"`
	Variants  datatypes.JSON `gorm:"column:variants" json:"variants"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Image) TableName() string { return "images" }
