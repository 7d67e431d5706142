package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type TopService struct {
	ServiceID   uint            `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Count       int             `json:"count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type UpcomingAppointment struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	BarberName  string `json:"barber_name"`
	ServiceName string `json:"service_name"`
	Type        string `json:"type"`
}

type Dashboard struct {
	ByStatus    map[string]int        `json:"by_status"`
	ByType      map[string]int        `json:"by_type"`
	Revenue     decimal.Decimal       `json:"revenue"`
	TopServices []TopService          `json:"top_services"`
	Upcoming    []UpcomingAppointment `json:"upcoming"`
}

// BuildDashboard resume os agendamentos do período. Revenue só soma os
// concluídos; upcoming são os agendados a partir de (today, nowHM).
func BuildDashboard(apps []models.Appointment, today, nowHM string, topN, upcomingN int) Dashboard {
	d := Dashboard{
		ByStatus:    map[string]int{},
		ByType:      map[string]int{},
		Revenue:     decimal.Zero,
		TopServices: []TopService{},
		Upcoming:    []UpcomingAppointment{},
	}

	top := map[uint]*TopService{}
	for _, ap := range apps {
		d.ByStatus[ap.Status]++
		d.ByType[ap.Type]++

		if finance.IsCompleted(ap.Status) {
			d.Revenue = d.Revenue.Add(ap.Price)

			s, ok := top[ap.ServiceID]
			if !ok {
				s = &TopService{ServiceID: ap.ServiceID, ServiceName: ap.Service.Name, Revenue: decimal.Zero}
				top[ap.ServiceID] = s
			}
			s.Count++
			s.Revenue = s.Revenue.Add(ap.Price)
		}

		if ap.Status == "scheduled" && (ap.Date > today || (ap.Date == today && ap.Time >= nowHM)) {
			d.Upcoming = append(d.Upcoming, UpcomingAppointment{
				ID:          ap.ID,
				Date:        ap.Date,
				Time:        ap.Time,
				ClientName:  ap.Client.Name,
				BarberName:  ap.Barber.Name,
				ServiceName: ap.Service.Name,
				Type:        ap.Type,
			})
		}
	}

	for _, s := range top {
		d.TopServices = append(d.TopServices, *s)
	}
	sort.Slice(d.TopServices, func(i, j int) bool {
		a, b := d.TopServices[i], d.TopServices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ServiceID < b.ServiceID
	})
	if topN > 0 && len(d.TopServices) > topN {
		d.TopServices = d.TopServices[:topN]
	}

	sort.Slice(d.Upcoming, func(i, j int) bool {
		a, b := d.Upcoming[i], d.Upcoming[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	if upcomingN > 0 && len(d.Upcoming) > upcomingN {
		d.Upcoming = d.Upcoming[:upcomingN]
	}

	return d
}
