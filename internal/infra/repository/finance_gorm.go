package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type FinanceGormRepository struct {
	db *gorm.DB
}

func NewFinanceGormRepository(db *gorm.DB) *FinanceGormRepository {
	return &FinanceGormRepository{db: db}
}

// ListFinancialAppointments: intervalo inclusivo nas duas pontas
func (r *FinanceGormRepository) ListFinancialAppointments(
	ctx context.Context,
	f domain.FinancialFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("date >= ? AND date <= ?", f.StartDate, f.EndDate)

	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.CompletedOnly {
		q = q.Where("LOWER(status) = ?", "completed")
	}

	apps := []models.Appointment{}
	if err := q.Order("date ASC, time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *FinanceGormRepository) AddPayout(ctx context.Context, p *models.Payout) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *FinanceGormRepository) GetPayout(ctx context.Context, id uint) (*models.Payout, error) {
	var p models.Payout
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, "payout_not_found")
	}
	return &p, nil
}

// FindReversalOf retorna nil, nil quando não há estorno.
// Linhas antigas sem kind são reconhecidas pelo texto do reason.
func (r *FinanceGormRepository) FindReversalOf(ctx context.Context, payoutID uint) (*models.Payout, error) {
	marker := fmt.Sprintf("%s%d", domain.ReversalMarker, payoutID)

	var reversals []models.Payout
	if err := r.db.WithContext(ctx).
		Where("reversed_payout_id = ?", payoutID).
		Or("COALESCE(kind, '') = '' AND (reason = ? OR reason LIKE ?)", marker, marker+":%").
		Limit(1).
		Find(&reversals).Error; err != nil {
		return nil, err
	}
	if len(reversals) == 0 {
		return nil, nil
	}
	return &reversals[0], nil
}

func (r *FinanceGormRepository) GetPayouts(ctx context.Context, f domain.PayoutFilter) ([]models.Payout, error) {
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", f.From, f.To)

	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}

	payouts := []models.Payout{}
	if err := q.Order("created_at DESC, id DESC").Find(&payouts).Error; err != nil {
		return nil, err
	}
	return payouts, nil
}

var _ domain.Repository = (*FinanceGormRepository)(nil)
