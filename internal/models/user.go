package models

import "time"

// User represents a registered account. The Username is set to the email
// at signup and is the subject encoded into issued tokens.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash after registration
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	Items     []Item    `json:"items" gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
