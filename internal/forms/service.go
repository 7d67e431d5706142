package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// Categories é o conjunto fixo de categorias de serviço
var Categories = []string{"haircut", "beard", "shave", "combo", "care"}

type ServiceInput struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Duration    int             `json:"duration" validate:"required,min=1,max=600"`
	Price       decimal.Decimal `json:"price"`
	Popular     bool            `json:"popular"`
	Category    string          `json:"category" validate:"required,oneof=haircut beard shave combo care"`
	Discount    *int            `json:"discount" validate:"omitempty,min=0,max=100"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=500"`
}

func (in *ServiceInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))

	fe := check(in)
	if in.Price.IsNegative() {
		fe.Add("price", "Preço não pode ser negativo.")
	}
	return resultOf(fe)
}

func (in ServiceInput) ApplyTo(s *models.Service) {
	s.Name = in.Name
	s.Description = in.Description
	s.Duration = in.Duration
	s.Price = in.Price
	s.Popular = in.Popular
	s.Category = in.Category
	s.Discount = in.Discount
	s.ImageURL = in.ImageURL
}
