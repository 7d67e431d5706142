package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/usecase/review"
)

type fakePublicCatalog struct {
	barbers []models.Barber
}

func (f *fakePublicCatalog) Services(context.Context) ([]models.Service, error) {
	return []models.Service{{ID: 1, Name: "Corte", Price: decimal.NewFromInt(300)}}, nil
}

func (f *fakePublicCatalog) ActiveBarbers(context.Context) ([]models.Barber, error) {
	return f.barbers, nil
}

type fakeReviews struct {
	rows []models.Review
}

func (f *fakeReviews) ListReviews(_ context.Context, approved *bool, barberID *uint) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.rows {
		if approved != nil && r.Approved != *approved {
			continue
		}
		if barberID != nil && r.BarberID != *barberID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviews) GetReview(context.Context, uint) (*models.Review, error) { return nil, nil }
func (f *fakeReviews) SaveReview(context.Context, *models.Review) error        { return nil }
func (f *fakeReviews) DeleteReview(context.Context, uint) error                { return nil }
func (f *fakeReviews) RefreshBarberRating(context.Context, uint) error         { return nil }

func publicRouter(media MediaStore) *gin.Engine {
	catalog := &fakePublicCatalog{barbers: []models.Barber{
		{ID: 3, Name: "Ali", Email: "ali@mail.com", CommissionRate: decimal.NewFromInt(40), Active: true},
		{ID: 4, Name: "Veli", PhotoURL: "https://cdn.test/custom.jpg", Active: true},
	}}
	reviews := &fakeReviews{rows: []models.Review{
		{ID: 1, BarberID: 3, ClientName: "Can", ClientEmail: "can@mail.com", Rating: 5, Approved: true, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2, BarberID: 3, ClientName: "Ece", Rating: 1},
		{ID: 3, BarberID: 4, ClientName: "Efe", Rating: 4, Approved: true},
	}}

	h := NewPublicHandler(catalog, review.NewModerate(reviews, nil), media)
	r := gin.New()
	r.GET("/services", h.Services)
	r.GET("/barbers", h.Barbers)
	r.GET("/reviews", h.Reviews)
	r.GET("/site", h.Site)
	return r
}

func TestPublicBarbersHideInternalFields(t *testing.T) {
	w := perform(t, publicRouter(&fakeMedia{}), http.MethodGet, "/barbers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "commission") || strings.Contains(w.Body.String(), "ali@mail.com") {
		t.Fatalf("leaked internal fields: %s", w.Body.String())
	}

	var barbers []publicBarber
	decode(t, w, &barbers)
	if len(barbers) != 2 {
		t.Fatalf("len = %d", len(barbers))
	}
	if barbers[0].PhotoURL != "https://cdn.test/barbers/barber3.jpg?t=1" {
		t.Fatalf("fallback photo = %q", barbers[0].PhotoURL)
	}
	if barbers[1].PhotoURL != "https://cdn.test/custom.jpg" {
		t.Fatalf("stored photo = %q", barbers[1].PhotoURL)
	}
}

func TestPublicReviewsOnlyApproved(t *testing.T) {
	r := publicRouter(nil)

	w := perform(t, r, http.MethodGet, "/reviews", nil)
	var all []publicReview
	decode(t, w, &all)
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if strings.Contains(w.Body.String(), "can@mail.com") {
		t.Fatal("client email must not be public")
	}

	w = perform(t, r, http.MethodGet, "/reviews?barber_id=4", nil)
	var one []publicReview
	decode(t, w, &one)
	if len(one) != 1 || one[0].ClientName != "Efe" {
		t.Fatalf("filtered = %+v", one)
	}
}

func TestPublicSite(t *testing.T) {
	w := perform(t, publicRouter(&fakeMedia{}), http.MethodGet, "/site", nil)
	var body map[string]*string
	decode(t, w, &body)
	if body["hero"] == nil || *body["hero"] != "https://cdn.test/hero/hero.jpg?t=1" {
		t.Fatalf("hero = %v", body["hero"])
	}

	w = perform(t, publicRouter(nil), http.MethodGet, "/site", nil)
	body = nil
	decode(t, w, &body)
	if body["about"] != nil {
		t.Fatalf("about without storage = %v", *body["about"])
	}
}
