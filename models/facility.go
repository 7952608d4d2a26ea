package models

type Facility struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`
}

func (Facility) TableName() string { return "facilities" }
