package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Bio       string `gorm:"type:text" json:"bio"`
	PhotoURL  string `gorm:"size:500" json:"photo_url"`

	JoinDate time.Time `json:"join_date"`

	TotalCuts       int `gorm:"default:0" json:"total_cuts"`
	AppointmentCuts int `gorm:"default:0" json:"appointment_cuts"`
	WalkInCuts      int `gorm:"default:0" json:"walk_in_cuts"`

	CommissionRate  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"commission_rate"`
	TotalCommission decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_commission"`

	Active bool     `gorm:"default:true" json:"active"`
	Rating *float64 `json:"rating"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE;" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
