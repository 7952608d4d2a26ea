package repositories

import (
	"encoding/json"

	"vhotelok-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Upsert records the upload; re-uploading the same file name keeps the
// existing row, matching the overwrite-in-place file semantics.
func (r *ImageRepository) Upsert(image *models.Image) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "file_name"}},
		DoNothing: true,
	}).Create(image).Error
}

func (r *ImageRepository) GetByFileName(fileName string) (*models.Image, error) {
	var image models.Image
	if err := r.db.Where("file_name = ?", fileName).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// SetVariants stores the resize outputs produced by the background worker.
func (r *ImageRepository) SetVariants(fileName string, variants map[string]string) error {
	raw, err := json.Marshal(variants)
	if err != nil {
		return err
	}
	return r.db.Model(&models.Image{}).
		Where("file_name = ?", fileName).
		Update("variants", datatypes.JSON(raw)).Error
}
