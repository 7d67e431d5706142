package cache

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type countingSource struct{ calls int }

func (s *countingSource) GetAllServices(context.Context, string) ([]models.Service, error) {
	s.calls++
	return nil, nil
}

func (s *countingSource) GetAllBarbers(_ context.Context, activeOnly bool) ([]models.Barber, error) {
	s.calls++
	if !activeOnly {
		return []models.Barber{{ID: 1}, {ID: 2}}, nil
	}
	return []models.Barber{{ID: 1, Active: true}}, nil
}

func TestLoginKeyNormalizes(t *testing.T) {
	if loginKey("  Admin@Shop.COM ") != "login:fail:admin@shop.com" {
		t.Fatalf("key=%q", loginKey("  Admin@Shop.COM "))
	}
}

func TestNilLimiterAllows(t *testing.T) {
	var l *LoginLimiter
	ok, err := l.Allow(context.Background(), "x@y.z")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if err := l.Fail(context.Background(), "x@y.z"); err != nil {
		t.Fatal(err)
	}
	if err := l.Reset(context.Background(), "x@y.z"); err != nil {
		t.Fatal(err)
	}
}

func TestPublicCatalogWithoutRedis(t *testing.T) {
	src := &countingSource{}
	c := NewPublicCatalog(src, nil)

	services, err := c.Services(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if services == nil {
		t.Fatal("expected empty slice")
	}

	barbers, err := c.ActiveBarbers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(barbers) != 1 || !barbers[0].Active {
		t.Fatalf("barbers=%+v", barbers)
	}

	c.Invalidate(context.Background())
	if src.calls != 2 {
		t.Fatalf("calls=%d", src.calls)
	}
}
