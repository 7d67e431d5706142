package finance

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type Totals struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	TotalShopRevenue decimal.Decimal `json:"total_shop_revenue"`
	TotalPayouts     decimal.Decimal `json:"total_payouts"`
	NetShopRevenue   decimal.Decimal `json:"net_shop_revenue"`
	NetEarnings      decimal.Decimal `json:"net_earnings"`
	EntryCount       int             `json:"entry_count"`
	PayoutCount      int             `json:"payout_count"`
}

// Rollup agrega entradas e pagamentos de um período.
// NetShopRevenue não desconta pagamentos; só NetEarnings (visão do barbeiro) desconta.
func Rollup(entries []FinancialEntry, payouts []models.Payout) Totals {
	t := Totals{
		TotalRevenue:    decimal.Zero,
		TotalCommission: decimal.Zero,
		EntryCount:      len(entries),
		PayoutCount:     len(payouts),
	}

	for _, e := range entries {
		t.TotalRevenue = t.TotalRevenue.Add(e.TotalRevenue)
		t.TotalCommission = t.TotalCommission.Add(e.BarberCommission)
	}

	t.TotalShopRevenue = t.TotalRevenue.Sub(t.TotalCommission)
	t.TotalPayouts = TotalPayouts(payouts)
	t.NetShopRevenue = t.TotalShopRevenue
	t.NetEarnings = NetEarnings(t.TotalCommission, t.TotalPayouts)

	return t
}

// NetEarnings pode ficar negativo quando os pagamentos excedem a comissão
func NetEarnings(totalCommission, totalPayouts decimal.Decimal) decimal.Decimal {
	return totalCommission.Sub(totalPayouts)
}
