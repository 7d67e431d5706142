package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

type AuditLogStore interface {
	ListAuditLogs(ctx context.Context, f repository.AuditFilter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs AuditLogStore
	tz   string
}

func NewAuditLogsHandler(logs AuditLogStore, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	f := repository.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		UserID: queryUint(c, "user_id"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	loc := timezone.Location(h.tz)
	if from, err := time.ParseInLocation(timezone.DateLayout, c.Query("from"), loc); err == nil {
		f.From = &from
	}
	if to, err := time.ParseInLocation(timezone.DateLayout, c.Query("to"), loc); err == nil {
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.logs.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		respond(c, err, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
