package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// ======================================================
// TIPOS
// ======================================================

type DailyPoint struct {
	Date        string          `json:"date"`
	Revenue     decimal.Decimal `json:"revenue"`
	Commission  decimal.Decimal `json:"commission"`
	ShopRevenue decimal.Decimal `json:"shop_revenue"`
	Count       int             `json:"count"`
}

type BarberBreakdown struct {
	BarberID    uint            `json:"barber_id"`
	BarberName  string          `json:"barber_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Commission  decimal.Decimal `json:"commission"`
	ShopRevenue decimal.Decimal `json:"shop_revenue"`
	Count       int             `json:"count"`
}

type ServiceBreakdown struct {
	ServiceName string          `json:"service_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Count       int             `json:"count"`
}

type ShopReport struct {
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
	CompletedOnly bool                     `json:"completed_only"`
	Totals        finance.Totals           `json:"totals"`
	Entries       []finance.FinancialEntry `json:"entries"`
	Payouts       []models.Payout          `json:"payouts"`
	Daily         []DailyPoint             `json:"daily"`
	ByBarber      []BarberBreakdown        `json:"by_barber"`
	ByService     []ServiceBreakdown       `json:"by_service"`
}

type BarberReport struct {
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	BarberID   uint                     `json:"barber_id"`
	BarberName string                   `json:"barber_name"`
	Totals     finance.Totals           `json:"totals"`
	Entries    []finance.FinancialEntry `json:"entries"`
	Payouts    []models.Payout          `json:"payouts"`
	Daily      []DailyPoint             `json:"daily"`
}

// ======================================================
// MONTAGEM
// ======================================================

func BuildShop(start, end string, completedOnly bool, entries []finance.FinancialEntry, payouts []models.Payout) ShopReport {
	entries = nonNilEntries(entries)
	payouts = nonNilPayouts(payouts)

	return ShopReport{
		StartDate:     start,
		EndDate:       end,
		CompletedOnly: completedOnly,
		Totals:        finance.Rollup(entries, payouts),
		Entries:       entries,
		Payouts:       payouts,
		Daily:         Daily(entries),
		ByBarber:      ByBarber(entries),
		ByService:     ByService(entries),
	}
}

func BuildBarber(start, end string, barber models.Barber, entries []finance.FinancialEntry, payouts []models.Payout) BarberReport {
	entries = nonNilEntries(entries)
	payouts = nonNilPayouts(payouts)

	return BarberReport{
		StartDate:  start,
		EndDate:    end,
		BarberID:   barber.ID,
		BarberName: barber.Name,
		Totals:     finance.Rollup(entries, payouts),
		Entries:    entries,
		Payouts:    payouts,
		Daily:      Daily(entries),
	}
}

// Daily agrupa por data, em ordem crescente
func Daily(entries []finance.FinancialEntry) []DailyPoint {
	byDate := map[string]*DailyPoint{}
	for _, e := range entries {
		p, ok := byDate[e.Date]
		if !ok {
			p = &DailyPoint{Date: e.Date, Revenue: decimal.Zero, Commission: decimal.Zero, ShopRevenue: decimal.Zero}
			byDate[e.Date] = p
		}
		p.Revenue = p.Revenue.Add(e.TotalRevenue)
		p.Commission = p.Commission.Add(e.BarberCommission)
		p.ShopRevenue = p.ShopRevenue.Add(e.ShopRevenue)
		p.Count++
	}

	out := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ByBarber ordena por faturamento, maior primeiro
func ByBarber(entries []finance.FinancialEntry) []BarberBreakdown {
	byID := map[uint]*BarberBreakdown{}
	for _, e := range entries {
		b, ok := byID[e.BarberID]
		if !ok {
			b = &BarberBreakdown{BarberID: e.BarberID, BarberName: e.BarberName, Revenue: decimal.Zero, Commission: decimal.Zero, ShopRevenue: decimal.Zero}
			byID[e.BarberID] = b
		}
		b.Revenue = b.Revenue.Add(e.TotalRevenue)
		b.Commission = b.Commission.Add(e.BarberCommission)
		b.ShopRevenue = b.ShopRevenue.Add(e.ShopRevenue)
		b.Count++
	}

	out := make([]BarberBreakdown, 0, len(byID))
	for _, b := range byID {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].BarberID < out[j].BarberID
	})
	return out
}

func ByService(entries []finance.FinancialEntry) []ServiceBreakdown {
	byName := map[string]*ServiceBreakdown{}
	for _, e := range entries {
		s, ok := byName[e.ServiceName]
		if !ok {
			s = &ServiceBreakdown{ServiceName: e.ServiceName, Revenue: decimal.Zero}
			byName[e.ServiceName] = s
		}
		s.Revenue = s.Revenue.Add(e.TotalRevenue)
		s.Count++
	}

	out := make([]ServiceBreakdown, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].ServiceName < out[j].ServiceName
	})
	return out
}

func nonNilEntries(e []finance.FinancialEntry) []finance.FinancialEntry {
	if e == nil {
		return []finance.FinancialEntry{}
	}
	return e
}

func nonNilPayouts(p []models.Payout) []models.Payout {
	if p == nil {
		return []models.Payout{}
	}
	return p
}
