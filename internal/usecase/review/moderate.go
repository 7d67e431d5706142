package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type Moderate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModerate(repo domain.Repository, audit *audit.Dispatcher) *Moderate {
	return &Moderate{repo: repo, audit: audit}
}

// List: approved nil traz todas
func (uc *Moderate) List(ctx context.Context, approved *bool, barberID *uint) ([]models.Review, error) {
	reviews, err := uc.repo.ListReviews(ctx, approved, barberID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// Approve publica a avaliação e recalcula a nota do barbeiro
func (uc *Moderate) Approve(ctx context.Context, actorID *uint, id uint) (*models.Review, error) {
	r, err := uc.repo.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Approve(r); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveReview(ctx, r); err != nil {
		return nil, err
	}
	if err := uc.repo.RefreshBarberRating(ctx, r.BarberID); err != nil {
		return nil, err
	}

	uc.dispatch(actorID, "review_approved", r)
	return r, nil
}

// Reject apaga uma avaliação pendente
func (uc *Moderate) Reject(ctx context.Context, actorID *uint, id uint) error {
	r, err := uc.repo.GetReview(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.CanReject(*r); err != nil {
		return err
	}
	if err := uc.repo.DeleteReview(ctx, id); err != nil {
		return err
	}

	uc.dispatch(actorID, "review_rejected", r)
	return nil
}

func (uc *Moderate) dispatch(actorID *uint, action string, r *models.Review) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"barber_id": r.BarberID,
			"rating":    r.Rating,
		},
	})
}
