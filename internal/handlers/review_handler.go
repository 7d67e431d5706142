package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/usecase/review"
)

type ReviewHandler struct {
	moderate *review.Moderate
}

func NewReviewHandler(moderate *review.Moderate) *ReviewHandler {
	return &ReviewHandler{moderate: moderate}
}

// List: ?status=pending|approved, sem status traz todas
func (h *ReviewHandler) List(c *gin.Context) {
	var approved *bool
	switch c.Query("status") {
	case "":
	case "pending":
		v := false
		approved = &v
	case "approved":
		v := true
		approved = &v
	default:
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	reviews, err := h.moderate.List(c.Request.Context(), approved, queryUint(c, "barber_id"))
	if err != nil {
		respond(c, err, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := h.moderate.Approve(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respond(c, err, "failed_to_approve_review", "Erro ao aprovar avaliação.")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReviewHandler) Reject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.moderate.Reject(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respond(c, err, "failed_to_reject_review", "Erro ao rejeitar avaliação.")
		return
	}
	c.Status(http.StatusNoContent)
}
