package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoomID uint `gorm:"column:room_id;index;not null" json:"room_id"`
	UserID uint `gorm:"column:user_id;index;not null" json:"user_id"`

	DateFrom time.Time `gorm:"column:date_from;type:date;not null" json:"date_from"`
	DateTo   time.Time `gorm:"column:date_to;type:date;not null" json:"date_to"`

	// Price is the per-night rate snapshotted from the room at booking
	// time, so later room edits don't rewrite past bookings.
	Price int `gorm:"not null" json:"price"`

	TotalCost int `gorm:"-" json:"total_cost"`

	Room Room `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Booking) TableName() string { return "bookings" }

// Nights is the stay length in whole days.
func (b *Booking) Nights() int {
	return int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
}

func (b *Booking) AfterFind(*gorm.DB) error {
	b.TotalCost = b.Nights() * b.Price
	return nil
}
