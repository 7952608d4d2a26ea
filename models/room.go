package models

type Room struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	HotelID uint  `gorm:"column:hotel_id;index;not null" json:"hotel_id"`
	Hotel   Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:RESTRICT" json:"-"`

	Title       string  `gorm:"type:varchar(100);not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Price       int     `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`

	// Read through the room_facilities join table; writes go through
	// RoomRepository.SyncFacilities so the diff stays explicit.
	Facilities []Facility `gorm:"many2many:room_facilities" json:"facilities"`
}

func (Room) TableName() string { return "rooms" }
