package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ServiceStore interface {
	GetAllServices(ctx context.Context, category string) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}

type ServiceHandler struct {
	services ServiceStore
	catalog  CatalogInvalidator
}

func NewServiceHandler(services ServiceStore, catalog CatalogInvalidator) *ServiceHandler {
	return &ServiceHandler{services: services, catalog: catalog}
}

func (h *ServiceHandler) invalidate(c *gin.Context) {
	if h.catalog != nil {
		h.catalog.Invalidate(c.Request.Context())
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	services, err := h.services.GetAllServices(c.Request.Context(), category)
	if err != nil {
		respond(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	httpresp.List(c, forms.Categories)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s, err := h.services.GetService(c.Request.Context(), id)
	if err != nil {
		respond(c, err, "failed_to_load_service", "Erro ao carregar serviço.")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var in forms.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_service", "Dados inválidos.")
		return
	}

	var s models.Service
	in.ApplyTo(&s)
	if err := h.services.CreateService(c.Request.Context(), &s); err != nil {
		respond(c, err, "failed_to_create_service", "Erro ao cadastrar serviço.")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var in forms.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_service", "Dados inválidos.")
		return
	}

	s, err := h.services.GetService(c.Request.Context(), id)
	if err != nil {
		respond(c, err, "failed_to_load_service", "Erro ao carregar serviço.")
		return
	}
	in.ApplyTo(s)
	if err := h.services.UpdateService(c.Request.Context(), s); err != nil {
		respond(c, err, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.services.DeleteService(c.Request.Context(), id); err != nil {
		respond(c, err, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	h.invalidate(c)
	c.Status(http.StatusNoContent)
}
