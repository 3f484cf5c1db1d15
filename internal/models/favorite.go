package models

import "time"

// Favorite is the user<->stock association. The composite unique index is
// the authoritative uniqueness constraint; the service-level membership
// check only provides the friendly conflict message.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_favorites_user_stock"`
	StockID   uint      `json:"stock_id" gorm:"uniqueIndex:idx_favorites_user_stock"`
	CreatedAt time.Time `json:"created_at"`

	Stock Stock `json:"stock,omitempty" gorm:"foreignKey:StockID"`
}
