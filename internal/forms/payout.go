package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
)

type PayoutInput struct {
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason" validate:"required,max=255"`
	BarberID *uint           `json:"barber_id"`
}

func (in *PayoutInput) Validate() error {
	in.Reason = strings.TrimSpace(in.Reason)

	fe := check(in)
	if !in.Amount.IsPositive() {
		fe.Add("amount", "Valor deve ser maior que zero.")
	}
	if finance.ReasonHasMarker(in.Reason) {
		fe.Add("reason", "Texto reservado para estornos.")
	}
	return resultOf(fe)
}
