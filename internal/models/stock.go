package models

import "time"

// Stock represents a tradable market instrument. Stocks are inserted once
// via the admin endpoint and never updated or deleted; SymbolID is the
// unique business identifier.
type Stock struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SymbolID     string    `json:"symbolId" gorm:"uniqueIndex;type:varchar(32)" validate:"required,min=1,max=32"`
	NameZhTw     string    `json:"nameZhTw" gorm:"index" validate:"required"`
	IndustryZhTw string    `json:"industryZhTw"`
	Abnormal     string    `json:"abnormal"`
	Mode         string    `json:"mode"`
	CountryCode  string    `json:"countryCode"`
	TimeZone     string    `json:"timeZone"`
	IsIndex      bool      `json:"isIndex"`
	CreatedAt    time.Time `json:"created_at"`
}
