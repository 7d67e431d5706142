package finance

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// FinancialFilter deixa explícito o filtro de status: o relatório geral
// não filtra, o relatório do barbeiro só considera concluídos.
type FinancialFilter struct {
	StartDate     string
	EndDate       string
	BarberID      *uint
	CompletedOnly bool
}

type PayoutFilter struct {
	From     time.Time
	To       time.Time
	BarberID *uint
}

type Repository interface {
	// agendamentos do período com Service e Barber pré-carregados
	ListFinancialAppointments(ctx context.Context, f FinancialFilter) ([]models.Appointment, error)

	AddPayout(ctx context.Context, p *models.Payout) error
	GetPayout(ctx context.Context, id uint) (*models.Payout, error)
	FindReversalOf(ctx context.Context, payoutID uint) (*models.Payout, error)
	// mais recentes primeiro
	GetPayouts(ctx context.Context, f PayoutFilter) ([]models.Payout, error)
}
