package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// CatalogSource fornece serviços e barbeiros para montar o formulário
type CatalogSource interface {
	GetAllServices(ctx context.Context, category string) ([]models.Service, error)
	GetAllBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
}

// loadCatalog: novos agendamentos só enxergam barbeiros ativos
func loadCatalog(ctx context.Context, src CatalogSource, activeOnly bool) (*forms.Catalog, error) {
	services, err := src.GetAllServices(ctx, "")
	if err != nil {
		return nil, err
	}
	barbers, err := src.GetAllBarbers(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return forms.NewCatalog(services, barbers), nil
}
