package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	apps, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Appointment{}
	}
	return apps, nil
}

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	return uc.repo.DeleteAppointment(ctx, id)
}
