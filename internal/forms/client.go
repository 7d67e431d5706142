package forms

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ClientInput struct {
	Name              string `json:"name" validate:"required,max=100"`
	Email             string `json:"email" validate:"omitempty,email,max=100"`
	Phone             string `json:"phone" validate:"max=20"`
	PreferredBarberID *uint  `json:"preferred_barber_id"`
	Notes             string `json:"notes" validate:"max=2000"`
}

func (in *ClientInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	fe := check(in)
	if in.PreferredBarberID != nil && *in.PreferredBarberID == 0 {
		in.PreferredBarberID = nil
	}
	return resultOf(fe)
}

// ApplyTo não mexe em total_visits/last_visit
func (in ClientInput) ApplyTo(c *models.Client) {
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.PreferredBarberID = in.PreferredBarberID
	c.Notes = in.Notes
}
