package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type fakeClients struct {
	rows   []models.Client
	nextID uint
}

func (f *fakeClients) GetAllClients(context.Context, string) ([]models.Client, error) {
	out := []models.Client{}
	return append(out, f.rows...), nil
}

func (f *fakeClients) GetClient(_ context.Context, id uint) (*models.Client, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			cp := f.rows[i]
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (f *fakeClients) CreateClient(_ context.Context, c *models.Client) error {
	f.nextID++
	c.ID = f.nextID
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeClients) UpdateClient(context.Context, *models.Client) error { return nil }
func (f *fakeClients) DeleteClient(context.Context, uint) error           { return nil }

func clientRouter(store ClientStore) *gin.Engine {
	h := NewClientHandler(store)
	r := gin.New()
	r.GET("/clients", h.List)
	r.GET("/clients/:id", h.Get)
	r.POST("/clients", h.Create)
	return r
}

func TestClientListIsNeverNull(t *testing.T) {
	w := perform(t, clientRouter(&fakeClients{}), http.MethodGet, "/clients", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("body = %s, want []", w.Body.String())
	}
}

func TestClientCreate(t *testing.T) {
	store := &fakeClients{}
	r := clientRouter(store)

	w := perform(t, r, http.MethodPost, "/clients", gin.H{"name": "  Mehmet  ", "email": "M@Mail.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if len(store.rows) != 1 || store.rows[0].Name != "Mehmet" || store.rows[0].Email != "m@mail.com" {
		t.Fatalf("stored = %+v", store.rows)
	}
}

func TestClientCreateValidation(t *testing.T) {
	store := &fakeClients{}
	w := perform(t, clientRouter(store), http.MethodPost, "/clients", gin.H{"email": "nao-e-email"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var e httperr.HTTPError
	decode(t, w, &e)
	if e.Fields["name"] == "" || e.Fields["email"] == "" {
		t.Fatalf("fields = %v", e.Fields)
	}
	if len(store.rows) != 0 {
		t.Fatal("invalid client must not be stored")
	}
}

func TestClientNotFound(t *testing.T) {
	r := clientRouter(&fakeClients{})

	if w := perform(t, r, http.MethodGet, "/clients/9", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if w := perform(t, r, http.MethodGet, "/clients/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
