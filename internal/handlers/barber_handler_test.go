package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type fakeBarbers struct {
	created  []models.Barber
	accounts []models.User
}

func (f *fakeBarbers) GetAllBarbers(context.Context, bool) ([]models.Barber, error) {
	return []models.Barber{}, nil
}

func (f *fakeBarbers) GetBarber(_ context.Context, id uint, _ bool) (*models.Barber, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			cp := f.created[i]
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (f *fakeBarbers) CreateBarber(_ context.Context, b *models.Barber, account *models.User) error {
	b.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *b)
	if account != nil {
		account.BarberID = &b.ID
		f.accounts = append(f.accounts, *account)
	}
	return nil
}

func (f *fakeBarbers) UpdateBarber(context.Context, *models.Barber) error { return nil }
func (f *fakeBarbers) DeleteBarber(context.Context, uint) error           { return nil }

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

type stubEmails struct{ ok bool }

func (s stubEmails) Valid(context.Context, string) bool { return s.ok }

func barberRouter(store BarberStore, inv CatalogInvalidator, emails EmailChecker, d *audit.Dispatcher) *gin.Engine {
	h := NewBarberHandler(store, inv, emails, d, testTZ)
	r := gin.New()
	r.Use(asAdmin)
	r.POST("/barbers", h.Create)
	r.PUT("/barbers/:id", h.Update)
	return r
}

func TestBarberCreateProvisionsAccount(t *testing.T) {
	store := &fakeBarbers{}
	inv := &countingInvalidator{}
	sink := &memorySink{}
	d := audit.NewDispatcher(sink)
	r := barberRouter(store, inv, nil, d)

	w := perform(t, r, http.MethodPost, "/barbers", gin.H{
		"name":            "Ali",
		"email":           "ali@barbearia.com",
		"commission_rate": "45",
		"password":        "segredo1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	if len(store.accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(store.accounts))
	}
	acc := store.accounts[0]
	if acc.Role != middleware.RoleBarber || acc.BarberID == nil || *acc.BarberID != store.created[0].ID {
		t.Fatalf("account = %+v", acc)
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("segredo1")) != nil {
		t.Fatal("password hash mismatch")
	}
	if !store.created[0].Active {
		t.Fatal("new barber should default to active")
	}
	if inv.calls != 1 {
		t.Fatalf("invalidations = %d, want 1", inv.calls)
	}

	d.Close()
	if len(sink.events) != 1 || sink.events[0].Action != "barber_created" {
		t.Fatalf("events = %+v", sink.events)
	}
}

func TestBarberCreateValidation(t *testing.T) {
	d := audit.NewDispatcher(&memorySink{})
	defer d.Close()

	tests := []struct {
		name   string
		emails EmailChecker
		body   gin.H
		field  string
	}{
		{"commission above 100", nil, gin.H{"name": "Ali", "commission_rate": "120"}, "commission_rate"},
		{"short password", nil, gin.H{"name": "Ali", "email": "a@b.com", "password": "123"}, "password"},
		{"password without email", nil, gin.H{"name": "Ali", "password": "segredo1"}, "email"},
		{"unreachable email domain", stubEmails{ok: false}, gin.H{"name": "Ali", "email": "a@nowhere.invalid", "password": "segredo1"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBarbers{}
			w := perform(t, barberRouter(store, nil, tt.emails, d), http.MethodPost, "/barbers", tt.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422 (%s)", w.Code, w.Body.String())
			}
			var e httperr.HTTPError
			decode(t, w, &e)
			if e.Fields[tt.field] == "" {
				t.Fatalf("fields = %v, want %s", e.Fields, tt.field)
			}
			if len(store.created) != 0 {
				t.Fatal("invalid barber must not be stored")
			}
		})
	}
}

func TestBarberUpdateIgnoresPassword(t *testing.T) {
	store := &fakeBarbers{created: []models.Barber{{ID: 1, Name: "Ali", Active: true}}}
	d := audit.NewDispatcher(&memorySink{})
	defer d.Close()

	w := perform(t, barberRouter(store, nil, nil, d), http.MethodPut, "/barbers/1", gin.H{
		"name":     "Ali Demir",
		"password": "x",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if len(store.accounts) != 0 {
		t.Fatal("update must not provision accounts")
	}
}
