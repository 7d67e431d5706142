package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type fakeRepo struct {
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	nextID       uint

	created   int
	updated   int
	completed int
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[uint]*models.Client{
			5: {ID: 5, Name: "Emre"},
		},
		appointments: map[uint]*models.Appointment{},
		nextID:       100,
	}
}

func (r *fakeRepo) GetBarber(context.Context, uint) (*models.Barber, error) {
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *fakeRepo) GetService(context.Context, uint) (*models.Service, error) {
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return c, nil
}

func (r *fakeRepo) CreateClient(_ context.Context, c *models.Client) error {
	r.nextID++
	c.ID = r.nextID
	r.clients[c.ID] = c
	return nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	r.created++
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	r.updated++
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointments(context.Context, domain.ListFilter) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) ListScheduledForBarberOnDate(
	_ context.Context,
	barberID uint,
	date string,
	excludeID uint,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID == barberID && ap.Date == date &&
			ap.Status == string(domain.StatusScheduled) && ap.ID != excludeID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) CompleteAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	r.completed++
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetAllServices(context.Context, string) ([]models.Service, error) {
	return []models.Service{
		{ID: 1, Name: "Corte", Price: decimal.NewFromInt(95), Duration: 30},
		{ID: 2, Name: "Barba", Price: decimal.NewFromInt(60), Duration: 20},
	}, nil
}

func (fakeCatalog) GetAllBarbers(_ context.Context, activeOnly bool) ([]models.Barber, error) {
	barbers := []models.Barber{
		{ID: 10, Name: "Ali", CommissionRate: decimal.NewFromInt(50), Active: true},
	}
	if !activeOnly {
		barbers = append(barbers, models.Barber{ID: 12, Name: "Kemal", CommissionRate: decimal.NewFromInt(40)})
	}
	return barbers, nil
}

func ptr[T any](v T) *T { return &v }
