package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber,omitempty"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	// Date (YYYY-MM-DD) e Time (HH:MM) no horário local da barbearia
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Type   string `gorm:"size:20;default:'appointment'" json:"type"`

	Duration         int             `json:"duration"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"commission_amount"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
