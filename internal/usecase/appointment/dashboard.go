package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/report"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

const (
	dashboardTopServices = 5
	dashboardUpcoming    = 10
)

type Dashboard struct {
	repo domain.Repository
	tz   string
}

func NewDashboard(repo domain.Repository, tz string) *Dashboard {
	return &Dashboard{repo: repo, tz: tz}
}

// Execute resume o período; upcoming é relativo ao relógio da barbearia
func (uc *Dashboard) Execute(ctx context.Context, startDate, endDate string) (*report.Dashboard, error) {
	if startDate > endDate {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	d := report.BuildDashboard(
		apps,
		now.Format(timezone.DateLayout),
		now.Format(timezone.TimeLayout),
		dashboardTopServices,
		dashboardUpcoming,
	)
	return &d, nil
}
