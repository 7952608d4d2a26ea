package models

// RoomFacility is the join row between rooms and facilities. Registered
// with SetupJoinTable so the table keeps its own id column.
type RoomFacility struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RoomID     uint `gorm:"column:room_id;index;not null" json:"room_id"`
	FacilityID uint `gorm:"column:facility_id;index;not null" json:"facility_id"`
}

func (RoomFacility) TableName() string { return "room_facilities" }
