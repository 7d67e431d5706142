package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type Repository interface {
	ListReviews(ctx context.Context, approved *bool, barberID *uint) ([]models.Review, error)
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	SaveReview(ctx context.Context, r *models.Review) error
	DeleteReview(ctx context.Context, id uint) error
	// recalcula a média das aprovadas no barbeiro
	RefreshBarberRating(ctx context.Context, barberID uint) error
}
