package models

import "time"

// Cliente da barbearia; contadores de visita são mantidos na conclusão do atendimento
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	PreferredBarberID *uint `json:"preferred_barber_id"`

	TotalVisits int        `gorm:"default:0" json:"total_visits"`
	LastVisit   *time.Time `json:"last_visit"`
	Notes       string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
