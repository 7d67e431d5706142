package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
)

type Quote struct {
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Commission  decimal.Decimal `json:"commission_amount"`
	ShopRevenue decimal.Decimal `json:"shop_revenue"`
	Display     string          `json:"display"`
}

// QuoteAppointment calcula os campos derivados sem gravar nada
type QuoteAppointment struct {
	catalog CatalogSource
}

func NewQuoteAppointment(catalog CatalogSource) *QuoteAppointment {
	return &QuoteAppointment{catalog: catalog}
}

func (uc *QuoteAppointment) Execute(ctx context.Context, serviceID, barberID uint) (*Quote, error) {
	cat, err := loadCatalog(ctx, uc.catalog, false)
	if err != nil {
		return nil, err
	}
	if _, ok := cat.Service(serviceID); !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if barberID != 0 {
		if _, ok := cat.Barber(barberID); !ok {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
	}

	form := forms.NewAppointmentForm(cat)
	form.SetService(serviceID)
	form.SetBarber(barberID)

	price, duration, commission := form.Derived()
	return &Quote{
		Price:       price,
		Duration:    duration,
		Commission:  commission,
		ShopRevenue: finance.ShopRevenue(price, commission),
		Display:     finance.FormatLira(price),
	}, nil
}
