package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

type BarberInput struct {
	Name           string          `json:"name" validate:"required,max=100"`
	Email          string          `json:"email" validate:"omitempty,email,max=100"`
	Phone          string          `json:"phone" validate:"max=20"`
	Specialty      string          `json:"specialty" validate:"max=100"`
	Bio            string          `json:"bio"`
	PhotoURL       string          `json:"photo_url" validate:"omitempty,max=500"`
	JoinDate       string          `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Active         *bool           `json:"active"`

	// só usado para criar a conta de acesso do barbeiro; nunca é gravado no barbeiro
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}

func (in *BarberInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in *BarberInput) Validate() error {
	in.normalize()
	fe := check(in)

	if !finance.ValidRate(in.CommissionRate) {
		fe.Add("commission_rate", "Comissão deve estar entre 0 e 100.")
	}
	if in.Password != "" && in.Email == "" {
		fe.Add("email", "E-mail obrigatório para criar o acesso.")
	}

	return resultOf(fe)
}

// ApplyTo copia os campos para o modelo; counters e rating não são tocados
func (in BarberInput) ApplyTo(b *models.Barber, tz string) {
	b.Name = in.Name
	b.Email = in.Email
	b.Phone = in.Phone
	b.Specialty = in.Specialty
	b.Bio = in.Bio
	b.PhotoURL = in.PhotoURL
	b.CommissionRate = in.CommissionRate

	if in.JoinDate != "" {
		if jd, err := timezone.ParseDate(tz, in.JoinDate); err == nil {
			b.JoinDate = jd
		}
	} else if b.JoinDate.IsZero() {
		now := timezone.NowIn(tz)
		b.JoinDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	if in.Active != nil {
		b.Active = *in.Active
	} else if b.ID == 0 {
		b.Active = true
	}
}
