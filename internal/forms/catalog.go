package forms

import "github.com/BruksfildServices01/barbershop-admin/internal/models"

// Catalog é o snapshot de barbeiros e serviços carregado para o formulário
type Catalog struct {
	services map[uint]models.Service
	barbers  map[uint]models.Barber
}

func NewCatalog(services []models.Service, barbers []models.Barber) *Catalog {
	c := &Catalog{
		services: make(map[uint]models.Service, len(services)),
		barbers:  make(map[uint]models.Barber, len(barbers)),
	}
	for _, s := range services {
		c.services[s.ID] = s
	}
	for _, b := range barbers {
		c.barbers[b.ID] = b
	}
	return c
}

func (c *Catalog) Service(id uint) (models.Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

func (c *Catalog) Barber(id uint) (models.Barber, bool) {
	b, ok := c.barbers[id]
	return b, ok
}
