package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) ListReviews(
	ctx context.Context,
	approved *bool,
	barberID *uint,
) ([]models.Review, error) {

	q := r.db.WithContext(ctx)
	if approved != nil {
		q = q.Where("approved = ?", *approved)
	}
	if barberID != nil {
		q = q.Where("barber_id = ?", *barberID)
	}

	reviews := []models.Review{}
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, notFound(err, "review_not_found")
	}
	return &rv, nil
}

func (r *ReviewGormRepository) SaveReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewGormRepository) DeleteReview(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("review_not_found")
	}
	return nil
}

func (r *ReviewGormRepository) RefreshBarberRating(ctx context.Context, barberID uint) error {
	var approved []models.Review
	if err := r.db.WithContext(ctx).
		Select("rating", "approved").
		Where("barber_id = ? AND approved = ?", barberID, true).
		Find(&approved).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("rating", domain.AverageRating(approved)).Error
}

var _ domain.Repository = (*ReviewGormRepository)(nil)
