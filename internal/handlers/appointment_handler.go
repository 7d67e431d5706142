package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo   domain.Repository
	save   *appointment.SaveAppointment
	status *appointment.ChangeStatus
	list   *appointment.ListAppointments
	remove *appointment.DeleteAppointment
	quote  *appointment.QuoteAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	save *appointment.SaveAppointment,
	status *appointment.ChangeStatus,
	list *appointment.ListAppointments,
	remove *appointment.DeleteAppointment,
	quote *appointment.QuoteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:   repo,
		save:   save,
		status: status,
		list:   list,
		remove: remove,
		quote:  quote,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ChangeStatusRequest struct {
	Action string `json:"action" binding:"required"`
}

// ======================================================
// CREATE / WALK-IN / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.saveWith(c, 0, false, http.StatusCreated)
}

func (h *AppointmentHandler) CreateWalkIn(c *gin.Context) {
	h.saveWith(c, 0, true, http.StatusCreated)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.saveWith(c, id, false, http.StatusOK)
}

func (h *AppointmentHandler) saveWith(c *gin.Context, id uint, walkIn bool, status int) {
	var in forms.AppointmentInput
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.save.Execute(c.Request.Context(), appointment.SaveAppointmentInput{
		ActorID:       middleware.UserID(c),
		AppointmentID: id,
		WalkIn:        walkIn,
		Fields:        in,
	})
	if err != nil {
		respond(c, err, "failed_to_save_appointment", "Erro ao salvar agendamento.")
		return
	}

	c.JSON(status, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	action := appointment.Action(strings.ToLower(strings.TrimSpace(req.Action)))
	ap, err := h.status.Execute(c.Request.Context(), middleware.UserID(c), id, action)
	if err != nil {
		respond(c, err, "failed_to_change_status", "Erro ao alterar status.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST / GET / DELETE
// ======================================================

// List aceita start_date, end_date, barber_id, client_id, status e type.
// Barbeiros só enxergam a própria agenda.
func (h *AppointmentHandler) List(c *gin.Context) {
	f := domain.ListFilter{
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
		BarberID:  queryUint(c, "barber_id"),
		ClientID:  queryUint(c, "client_id"),
	}
	if v := c.Query("status"); v != "" {
		st, ok := domain.ParseStatus(v)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		f.Status = &st
	}
	if v := c.Query("type"); v != "" {
		t, ok := domain.ParseType(v)
		if !ok {
			httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
			return
		}
		f.Type = &t
	}
	if middleware.Role(c) == middleware.RoleBarber {
		f.BarberID = middleware.BarberID(c)
		if f.BarberID == nil {
			httperr.Forbidden(c, "forbidden", "Usuário sem barbeiro vinculado.")
			return
		}
	}

	apps, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		respond(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respond(c, err, "failed_to_load_appointment", "Erro ao carregar agendamento.")
		return
	}
	if middleware.Role(c) == middleware.RoleBarber {
		own := middleware.BarberID(c)
		if own == nil || *own != ap.BarberID {
			respond(c, httperr.ErrBusiness("appointment_not_found"), "appointment_not_found", "")
			return
		}
	}
	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		respond(c, err, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// QUOTE
// ======================================================

// Quote devolve preço, duração e comissão sem gravar
func (h *AppointmentHandler) Quote(c *gin.Context) {
	serviceID := queryUint(c, "service_id")
	if serviceID == nil {
		httperr.BadRequest(c, "missing_service", "Serviço obrigatório.")
		return
	}
	var barberID uint
	if v := queryUint(c, "barber_id"); v != nil {
		barberID = *v
	}

	q, err := h.quote.Execute(c.Request.Context(), *serviceID, barberID)
	if err != nil {
		respond(c, err, "failed_to_quote", "Erro ao calcular valores.")
		return
	}
	c.JSON(http.StatusOK, q)
}
