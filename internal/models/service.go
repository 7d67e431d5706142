package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Duration    int             `gorm:"not null" json:"duration"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Popular     bool            `gorm:"default:false" json:"popular"`
	Category    string          `gorm:"size:20;not null" json:"category"`
	Discount    *int            `json:"discount"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
