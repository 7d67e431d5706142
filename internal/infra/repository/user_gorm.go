package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

// EnsureAdmin cria o admin inicial caso o e-mail ainda não exista
func (r *UserGormRepository) EnsureAdmin(ctx context.Context, u *models.User) (bool, error) {
	res := r.db.WithContext(ctx).
		Where(models.User{Email: u.Email}).
		FirstOrCreate(u)
	return res.RowsAffected > 0, res.Error
}
