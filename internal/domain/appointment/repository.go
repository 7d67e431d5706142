package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ListFilter struct {
	StartDate string
	EndDate   string
	BarberID  *uint
	ClientID  *uint
	Status    *Status
	Type      *Type
}

type Repository interface {
	// -------- Catálogo --------
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// agendamentos em aberto do barbeiro no dia, exceto excludeID
	ListScheduledForBarberOnDate(
		ctx context.Context,
		barberID uint,
		date string,
		excludeID uint,
	) ([]models.Appointment, error)

	// conclui e atualiza contadores de barbeiro e cliente na mesma transação
	CompleteAppointment(ctx context.Context, ap *models.Appointment) error
}
