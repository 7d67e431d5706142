package forms

import (
	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
)

// AppointmentInput é o corpo JSON aceito pela API. Campos ausentes não
// alteram o formulário; price e commission não são aceitos, vêm sempre
// do serviço e do barbeiro.
type AppointmentInput struct {
	Type      *string `json:"type"`
	ClientID  *uint   `json:"client_id"`
	BarberID  *uint   `json:"barber_id"`
	ServiceID *uint   `json:"service_id"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`

	// walk-in com cliente novo
	ClientName  *string `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
}

// Apply aplica o tipo primeiro, pois a troca de tipo limpa o cliente
func (in AppointmentInput) Apply(f *AppointmentForm) {
	if in.Type != nil {
		if t, ok := domain.ParseType(*in.Type); ok {
			f.SetType(t)
		} else {
			f.values.Type = *in.Type
		}
	}
	if in.ClientID != nil {
		f.SetClient(*in.ClientID)
	}
	if in.ClientName != nil {
		phone := ""
		if in.ClientPhone != nil {
			phone = *in.ClientPhone
		}
		f.SetNewClient(*in.ClientName, phone)
	}
	if in.BarberID != nil {
		f.SetBarber(*in.BarberID)
	}
	if in.ServiceID != nil {
		f.SetService(*in.ServiceID)
	}
	if in.Date != nil {
		f.SetDate(*in.Date)
	}
	if in.Time != nil {
		f.SetTime(*in.Time)
	}
	if in.Status != nil {
		if st, ok := domain.ParseStatus(*in.Status); ok {
			f.SetStatus(st)
		} else {
			f.values.Status = *in.Status
		}
	}
	if in.Notes != nil {
		f.SetNotes(*in.Notes)
	}
}
