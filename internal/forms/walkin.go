package forms

import (
	"time"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

// NewWalkInForm abre um atendimento sem agendamento prévio, com data e hora
// padrão iguais ao momento atual da barbearia.
func NewWalkInForm(catalog *Catalog, now time.Time) *AppointmentForm {
	f := NewAppointmentForm(catalog)
	f.SetType(domain.TypeWalkIn)
	f.SetDate(now.Format(timezone.DateLayout))
	f.SetTime(now.Format(timezone.TimeLayout))
	return f
}
