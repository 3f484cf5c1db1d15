package models

import "time"

// Item is a title/description record owned by exactly one user.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"index" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
