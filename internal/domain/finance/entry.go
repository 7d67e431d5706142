package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// FinancialEntry é derivado de um agendamento; nunca é persistido
type FinancialEntry struct {
	AppointmentID    uint            `json:"appointment_id"`
	Date             string          `json:"date"`
	Type             string          `json:"type"`
	ServiceName      string          `json:"service_name"`
	BarberID         uint            `json:"barber_id"`
	BarberName       string          `json:"barber_name"`
	Status           string          `json:"status"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	BarberCommission decimal.Decimal `json:"barber_commission"`
	ShopRevenue      decimal.Decimal `json:"shop_revenue"`
}

// EntryFromAppointment espera Service e Barber pré-carregados
func EntryFromAppointment(ap models.Appointment) FinancialEntry {
	return FinancialEntry{
		AppointmentID:    ap.ID,
		Date:             ap.Date,
		Type:             ap.Type,
		ServiceName:      ap.Service.Name,
		BarberID:         ap.BarberID,
		BarberName:       ap.Barber.Name,
		Status:           ap.Status,
		TotalRevenue:     ap.Price,
		BarberCommission: ap.CommissionAmount,
		ShopRevenue:      ShopRevenue(ap.Price, ap.CommissionAmount),
	}
}

func EntriesFromAppointments(aps []models.Appointment) []FinancialEntry {
	out := make([]FinancialEntry, 0, len(aps))
	for _, ap := range aps {
		out = append(out, EntryFromAppointment(ap))
	}
	return out
}

// IsCompleted compara o status sem diferenciar maiúsculas
func IsCompleted(status string) bool {
	return strings.EqualFold(status, "completed")
}
