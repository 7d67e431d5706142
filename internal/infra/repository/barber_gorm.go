package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

// GetAllBarbers devolve a coleção inteira; activeOnly serve para a agenda
func (r *BarberGormRepository) GetAllBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	barbers := []models.Barber{}
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) GetBarber(ctx context.Context, id uint, withReviews bool) (*models.Barber, error) {
	q := r.db.WithContext(ctx)
	if withReviews {
		q = q.Preload("Reviews", "approved = ?", true)
	}

	var b models.Barber
	if err := q.First(&b, id).Error; err != nil {
		return nil, notFound(err, "barber_not_found")
	}
	return &b, nil
}

// CreateBarber grava o barbeiro e, se houver, a conta de acesso na mesma transação
func (r *BarberGormRepository) CreateBarber(ctx context.Context, b *models.Barber, account *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Reviews").Create(b).Error; err != nil {
			return err
		}
		if account == nil {
			return nil
		}
		account.BarberID = &b.ID
		if err := tx.Create(account).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("email_already_used")
			}
			return err
		}
		return nil
	})
}

func (r *BarberGormRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Omit("Reviews").Save(b).Error
}

func (r *BarberGormRepository) DeleteBarber(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Barber{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("barber_not_found")
	}
	return nil
}
