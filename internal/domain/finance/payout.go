package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type PayoutKind string

const (
	KindPayout   PayoutKind = "payout"
	KindReversal PayoutKind = "reversal"
)

// ReversalMarker identifica estornos em linhas antigas (sem kind)
const ReversalMarker = "REVERSAL of "

// KindOf classifica um pagamento. O kind gravado prevalece;
// linhas sem kind são classificadas pelo marcador no reason.
func KindOf(p models.Payout) PayoutKind {
	switch PayoutKind(p.Kind) {
	case KindPayout, KindReversal:
		return PayoutKind(p.Kind)
	}
	if strings.Contains(p.Reason, ReversalMarker) {
		return KindReversal
	}
	return KindPayout
}

func IsReversal(p models.Payout) bool {
	return KindOf(p) == KindReversal
}

// ReversalReason monta o texto do estorno mantendo o marcador legado
func ReversalReason(original models.Payout) string {
	if original.Reason == "" {
		return fmt.Sprintf("%s%d", ReversalMarker, original.ID)
	}
	return fmt.Sprintf("%s%d: %s", ReversalMarker, original.ID, original.Reason)
}

// ReasonHasMarker é usado na validação: um pagamento normal não pode
// carregar o marcador, senão as duas classificações divergem.
func ReasonHasMarker(reason string) bool {
	return strings.Contains(reason, ReversalMarker)
}

// TotalPayouts soma pagamentos e subtrai estornos
func TotalPayouts(payouts []models.Payout) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payouts {
		if IsReversal(p) {
			total = total.Sub(p.Amount)
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}
