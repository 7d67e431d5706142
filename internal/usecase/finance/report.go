package finance

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/report"
)

type BarberSource interface {
	GetBarber(ctx context.Context, id uint, withReviews bool) (*models.Barber, error)
}

// ======================================================
// SHOP REPORT
// ======================================================

type ShopReport struct {
	repo finance.Repository
	tz   string
}

func NewShopReport(repo finance.Repository, tz string) *ShopReport {
	return &ShopReport{repo: repo, tz: tz}
}

// Execute não filtra status a menos que completedOnly seja pedido
func (uc *ShopReport) Execute(ctx context.Context, p Period, completedOnly bool) (*report.ShopReport, error) {
	from, to, err := p.Bounds(uc.tz)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListFinancialAppointments(ctx, finance.FinancialFilter{
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CompletedOnly: completedOnly,
	})
	if err != nil {
		return nil, err
	}

	payouts, err := uc.repo.GetPayouts(ctx, finance.PayoutFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	r := report.BuildShop(p.StartDate, p.EndDate, completedOnly, finance.EntriesFromAppointments(apps), payouts)
	return &r, nil
}

// ======================================================
// BARBER REPORT
// ======================================================

type BarberReport struct {
	repo    finance.Repository
	barbers BarberSource
	tz      string
}

func NewBarberReport(repo finance.Repository, barbers BarberSource, tz string) *BarberReport {
	return &BarberReport{repo: repo, barbers: barbers, tz: tz}
}

// Execute considera só agendamentos concluídos do barbeiro
func (uc *BarberReport) Execute(ctx context.Context, barberID uint, p Period) (*report.BarberReport, error) {
	from, to, err := p.Bounds(uc.tz)
	if err != nil {
		return nil, err
	}

	barber, err := uc.barbers.GetBarber(ctx, barberID, false)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListFinancialAppointments(ctx, finance.FinancialFilter{
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		BarberID:      &barberID,
		CompletedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	payouts, err := uc.repo.GetPayouts(ctx, finance.PayoutFilter{From: from, To: to, BarberID: &barberID})
	if err != nil {
		return nil, err
	}

	r := report.BuildBarber(p.StartDate, p.EndDate, *barber, finance.EntriesFromAppointments(apps), payouts)
	return &r, nil
}
