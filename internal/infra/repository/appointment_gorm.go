package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
	tz string
}

func NewAppointmentGormRepository(db *gorm.DB, tz string) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, tz: tz}
}

// notFound converte ErrRecordNotFound em erro de negócio
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, "barber_not_found")
	}
	return &b, nil
}

func (r *AppointmentGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "client_not_found")
	}
	return &c, nil
}

func (r *AppointmentGormRepository) CreateClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Omit("Client", "Barber", "Service").Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Omit("Client", "Barber", "Service").Save(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	if f.StartDate != "" {
		q = q.Where("date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("date <= ?", f.EndDate)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Status != nil {
		q = q.Where("LOWER(status) = ?", string(*f.Status))
	}
	if f.Type != nil {
		q = q.Where("type = ?", string(*f.Type))
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListScheduledForBarberOnDate(
	ctx context.Context,
	barberID uint,
	date string,
	excludeID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "time", "duration").
		Where("barber_id = ? AND date = ? AND status = ? AND id <> ?",
			barberID, date, string(domain.StatusScheduled), excludeID).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// CompleteAppointment grava (ou insere, se novo) o atendimento concluído e
// atualiza os contadores numa transação
func (r *AppointmentGormRepository) CompleteAppointment(ctx context.Context, ap *models.Appointment) error {
	visit, err := timezone.ParseDate(r.tz, ap.Date)
	if err != nil {
		visit = timezone.NowIn(r.tz)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Omit("Client", "Barber", "Service").Save(ap).Error; err != nil {
			return err
		}

		cutsColumn := "appointment_cuts"
		if ap.Type == string(domain.TypeWalkIn) {
			cutsColumn = "walk_in_cuts"
		}

		if err := tx.Model(&models.Barber{}).
			Where("id = ?", ap.BarberID).
			Updates(map[string]any{
				"total_cuts":       gorm.Expr("total_cuts + 1"),
				cutsColumn:         gorm.Expr(cutsColumn + " + 1"),
				"total_commission": gorm.Expr("total_commission + ?", ap.CommissionAmount),
				"updated_at":       time.Now(),
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).
			Where("id = ?", ap.ClientID).
			Updates(map[string]any{
				"total_visits": gorm.Expr("total_visits + 1"),
				"last_visit":   gorm.Expr("GREATEST(COALESCE(last_visit, ?), ?)", visit, visit),
				"updated_at":   time.Now(),
			}).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
