package models

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	Username  string `gorm:"type:varchar(20)" json:"username"`
	Email     string `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`

	// Never serialized; /auth/me must not leak it.
	HashedPassword string `gorm:"column:hashed_password;type:varchar(200);not null" json:"-"`
}

func (User) TableName() string { return "users" }
