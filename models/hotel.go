package models

type Hotel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Location string `gorm:"not null" json:"location"`
}

func (Hotel) TableName() string { return "hotels" }
