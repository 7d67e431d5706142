package finance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Commission = price × rate / 100, sem arredondamento
func Commission(price, ratePercent decimal.Decimal) decimal.Decimal {
	return price.Mul(ratePercent).Div(hundred)
}

func ShopRevenue(price, commission decimal.Decimal) decimal.Decimal {
	return price.Sub(commission)
}

// ValidRate indica se a taxa está entre 0 e 100
func ValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(hundred)
}

// DiscountedPrice aplica o desconto percentual de vitrine do serviço
func DiscountedPrice(price decimal.Decimal, discount *int) decimal.Decimal {
	if discount == nil || *discount <= 0 {
		return price
	}
	pct := decimal.NewFromInt(int64(*discount))
	return price.Sub(price.Mul(pct).Div(hundred))
}
