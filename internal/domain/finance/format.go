package finance

import "github.com/shopspring/decimal"

const CurrencySymbol = "₺"

func FormatLira(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + CurrencySymbol + d.Neg().StringFixed(2)
	}
	return CurrencySymbol + d.StringFixed(2)
}
