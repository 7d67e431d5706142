package finance

import (
	"time"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

// Period é um intervalo inclusivo de datas (YYYY-MM-DD) no fuso da barbearia
type Period struct {
	StartDate string
	EndDate   string
}

// Bounds converte o período em [início do primeiro dia, início do dia seguinte ao último)
func (p Period) Bounds(tz string) (time.Time, time.Time, error) {
	start, err := timezone.ParseDate(tz, p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_range")
	}
	end, err := timezone.ParseDate(tz, p.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_range")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_range")
	}
	return start, end.AddDate(0, 0, 1), nil
}

// MonthToDate vai do dia 1 do mês corrente até hoje
func MonthToDate(tz string) Period {
	now := timezone.NowIn(tz)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Period{
		StartDate: first.Format(timezone.DateLayout),
		EndDate:   now.Format(timezone.DateLayout),
	}
}
