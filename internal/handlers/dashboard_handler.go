package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/uistate"
	"github.com/BruksfildServices01/barbershop-admin/internal/usecase/appointment"
)

type DashboardHandler struct {
	summary *appointment.Dashboard
	tz      string
}

func NewDashboardHandler(summary *appointment.Dashboard, tz string) *DashboardHandler {
	return &DashboardHandler{summary: summary, tz: tz}
}

// Summary: contagens e próximos atendimentos; padrão é o mês corrente
func (h *DashboardHandler) Summary(c *gin.Context) {
	p, ok := period(c, h.tz)
	if !ok {
		return
	}

	d, err := h.summary.Execute(c.Request.Context(), p.StartDate, p.EndDate)
	if err != nil {
		respond(c, err, "failed_to_load_dashboard", "Erro ao carregar painel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start_date": p.StartDate,
		"end_date":   p.EndDate,
		"today":      today(h.tz),
		"summary":    d,
	})
}

// Layout devolve o estado inicial do painel para a largura informada
func (h *DashboardHandler) Layout(c *gin.Context) {
	width, _ := strconv.Atoi(c.Query("viewport_width"))
	c.JSON(http.StatusOK, uistate.InitialLayout(uistate.Viewport{Width: width}))
}
