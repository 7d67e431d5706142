package finance

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// Actor identifica quem registra o lançamento
type Actor struct {
	UserID *uint
	Name   string
}

// ======================================================
// ADD PAYOUT
// ======================================================

type AddPayout struct {
	repo    finance.Repository
	barbers BarberSource
	audit   *audit.Dispatcher
}

func NewAddPayout(repo finance.Repository, barbers BarberSource, audit *audit.Dispatcher) *AddPayout {
	return &AddPayout{repo: repo, barbers: barbers, audit: audit}
}

func (uc *AddPayout) Execute(ctx context.Context, actor Actor, in forms.PayoutInput) (*models.Payout, error) {

	// 1️⃣ validação (inclui o marcador reservado de estorno)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// 2️⃣ barbeiro, quando informado, precisa existir
	if in.BarberID != nil {
		if _, err := uc.barbers.GetBarber(ctx, *in.BarberID, false); err != nil {
			return nil, err
		}
	}

	// 3️⃣ gravação
	p := &models.Payout{
		Amount:   in.Amount,
		Reason:   in.Reason,
		UserID:   actor.UserID,
		UserName: actor.Name,
		BarberID: in.BarberID,
		Kind:     string(finance.KindPayout),
	}
	if err := uc.repo.AddPayout(ctx, p); err != nil {
		return nil, err
	}

	dispatch(uc.audit, actor, "payout_created", p)
	return p, nil
}

// ======================================================
// REVERSE PAYOUT
// ======================================================

type ReversePayout struct {
	repo  finance.Repository
	audit *audit.Dispatcher
}

func NewReversePayout(repo finance.Repository, audit *audit.Dispatcher) *ReversePayout {
	return &ReversePayout{repo: repo, audit: audit}
}

// Execute grava um novo lançamento de estorno; o original não é alterado
func (uc *ReversePayout) Execute(ctx context.Context, actor Actor, payoutID uint) (*models.Payout, error) {
	orig, err := uc.repo.GetPayout(ctx, payoutID)
	if err != nil {
		return nil, err
	}

	if finance.IsReversal(*orig) {
		return nil, httperr.ErrBusiness("cannot_reverse_reversal")
	}

	existing, err := uc.repo.FindReversalOf(ctx, orig.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("payout_already_reversed")
	}

	rev := &models.Payout{
		Amount:           orig.Amount,
		Reason:           finance.ReversalReason(*orig),
		UserID:           actor.UserID,
		UserName:         actor.Name,
		BarberID:         orig.BarberID,
		Kind:             string(finance.KindReversal),
		ReversedPayoutID: &orig.ID,
	}
	if err := uc.repo.AddPayout(ctx, rev); err != nil {
		// estorno concorrente barrado pelo índice único
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("payout_already_reversed")
		}
		return nil, err
	}

	dispatch(uc.audit, actor, "payout_reversed", rev)
	return rev, nil
}

// ======================================================
// LIST PAYOUTS
// ======================================================

type ListPayouts struct {
	repo finance.Repository
	tz   string
}

func NewListPayouts(repo finance.Repository, tz string) *ListPayouts {
	return &ListPayouts{repo: repo, tz: tz}
}

func (uc *ListPayouts) Execute(ctx context.Context, p Period, barberID *uint) ([]models.Payout, error) {
	from, to, err := p.Bounds(uc.tz)
	if err != nil {
		return nil, err
	}
	payouts, err := uc.repo.GetPayouts(ctx, finance.PayoutFilter{From: from, To: to, BarberID: barberID})
	if err != nil {
		return nil, err
	}
	if payouts == nil {
		payouts = []models.Payout{}
	}
	return payouts, nil
}

func dispatch(d *audit.Dispatcher, actor Actor, action string, p *models.Payout) {
	if d == nil {
		return
	}
	d.Dispatch(audit.Event{
		UserID:   actor.UserID,
		Action:   action,
		Entity:   "payout",
		EntityID: &p.ID,
		Metadata: map[string]any{
			"amount":    p.Amount.StringFixed(2),
			"kind":      p.Kind,
			"barber_id": p.BarberID,
		},
	})
}
