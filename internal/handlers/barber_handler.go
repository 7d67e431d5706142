package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type BarberStore interface {
	GetAllBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uint, withReviews bool) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber, account *models.User) error
	UpdateBarber(ctx context.Context, b *models.Barber) error
	DeleteBarber(ctx context.Context, id uint) error
}

// CatalogInvalidator limpa o cache do site público após escritas
type CatalogInvalidator interface {
	Invalidate(ctx context.Context)
}

// ======================================================
// HANDLER
// ======================================================

// EmailChecker confirma o domínio do e-mail de quem recebe acesso
type EmailChecker interface {
	Valid(ctx context.Context, email string) bool
}

type BarberHandler struct {
	barbers BarberStore
	catalog CatalogInvalidator
	emails  EmailChecker
	audit   *audit.Dispatcher
	tz      string
}

func NewBarberHandler(
	barbers BarberStore,
	catalog CatalogInvalidator,
	emails EmailChecker,
	audit *audit.Dispatcher,
	tz string,
) *BarberHandler {
	return &BarberHandler{barbers: barbers, catalog: catalog, emails: emails, audit: audit, tz: tz}
}

func (h *BarberHandler) invalidate(c *gin.Context) {
	if h.catalog != nil {
		h.catalog.Invalidate(c.Request.Context())
	}
}

func (h *BarberHandler) dispatch(c *gin.Context, action string, id uint) {
	if h.audit == nil {
		return
	}
	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   action,
		Entity:   "barber",
		EntityID: &id,
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.barbers.GetAllBarbers(c.Request.Context(), queryBool(c, "active"))
	if err != nil {
		respond(c, err, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.barbers.GetBarber(c.Request.Context(), id, true)
	if err != nil {
		respond(c, err, "failed_to_load_barber", "Erro ao carregar barbeiro.")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ======================================================
// CREATE
// ======================================================

// Create cadastra o barbeiro; com password provisiona também o usuário de acesso
func (h *BarberHandler) Create(c *gin.Context) {
	var in forms.BarberInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_barber", "Dados inválidos.")
		return
	}

	var b models.Barber
	in.ApplyTo(&b, h.tz)

	var account *models.User
	if in.Password != "" {
		if h.emails != nil && !h.emails.Valid(c.Request.Context(), b.Email) {
			httperr.Validation(c, forms.FieldErrors{"email": "Domínio de e-mail não recebe mensagens."})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao criar acesso.")
			return
		}
		account = &models.User{
			Name:         b.Name,
			Email:        b.Email,
			PasswordHash: string(hashed),
			Role:         middleware.RoleBarber,
		}
	}

	if err := h.barbers.CreateBarber(c.Request.Context(), &b, account); err != nil {
		respond(c, err, "failed_to_create_barber", "Erro ao cadastrar barbeiro.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "barber_created", b.ID)
	c.JSON(http.StatusCreated, b)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var in forms.BarberInput
	if !bindJSON(c, &in) {
		return
	}
	// senha só é aceita na criação
	in.Password = ""
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_barber", "Dados inválidos.")
		return
	}

	b, err := h.barbers.GetBarber(c.Request.Context(), id, false)
	if err != nil {
		respond(c, err, "failed_to_load_barber", "Erro ao carregar barbeiro.")
		return
	}

	in.ApplyTo(b, h.tz)
	if err := h.barbers.UpdateBarber(c.Request.Context(), b); err != nil {
		respond(c, err, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "barber_updated", b.ID)
	c.JSON(http.StatusOK, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.barbers.DeleteBarber(c.Request.Context(), id); err != nil {
		respond(c, err, "failed_to_delete_barber", "Erro ao excluir barbeiro.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "barber_deleted", id)
	c.Status(http.StatusNoContent)
}
