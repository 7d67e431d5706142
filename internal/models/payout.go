package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payout struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Reason string          `gorm:"size:255;not null" json:"reason"`

	UserID   *uint  `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`

	BarberID *uint `gorm:"index" json:"barber_id"`

	// Kind vazio = linha antiga, classificada pelo texto do reason
	Kind             string `gorm:"size:20" json:"kind"`
	ReversedPayoutID *uint  `gorm:"index" json:"reversed_payout_id"`
}
