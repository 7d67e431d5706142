package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/report"
	financeUC "github.com/BruksfildServices01/barbershop-admin/internal/usecase/finance"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	shop    *financeUC.ShopReport
	barber  *financeUC.BarberReport
	add     *financeUC.AddPayout
	reverse *financeUC.ReversePayout
	payouts *financeUC.ListPayouts
	tz      string
}

func NewFinanceHandler(
	shop *financeUC.ShopReport,
	barber *financeUC.BarberReport,
	add *financeUC.AddPayout,
	reverse *financeUC.ReversePayout,
	payouts *financeUC.ListPayouts,
	tz string,
) *FinanceHandler {
	return &FinanceHandler{
		shop:    shop,
		barber:  barber,
		add:     add,
		reverse: reverse,
		payouts: payouts,
		tz:      tz,
	}
}

// PayoutResult é a resposta de escrita no livro de pagamentos
type PayoutResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Payout  *models.Payout `json:"payout,omitempty"`
}

// ======================================================
// REPORTS
// ======================================================

// ShopReport: ?start_date&end_date&completed_only
func (h *FinanceHandler) ShopReport(c *gin.Context) {
	p, ok := period(c, h.tz)
	if !ok {
		return
	}

	r, err := h.shop.Execute(c.Request.Context(), p, queryBool(c, "completed_only"))
	if err != nil {
		respond(c, err, "failed_to_load_report", "Erro ao carregar relatório.")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *FinanceHandler) BarberReport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.barberReport(c, id)
}

// MyReport é o relatório do barbeiro logado
func (h *FinanceHandler) MyReport(c *gin.Context) {
	id := middleware.BarberID(c)
	if id == nil {
		httperr.Forbidden(c, "forbidden", "Usuário sem barbeiro vinculado.")
		return
	}
	h.barberReport(c, *id)
}

func (h *FinanceHandler) barberReport(c *gin.Context, barberID uint) {
	p, ok := period(c, h.tz)
	if !ok {
		return
	}

	r, err := h.barber.Execute(c.Request.Context(), barberID, p)
	if err != nil {
		respond(c, err, "failed_to_load_report", "Erro ao carregar relatório.")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Export: ?format=xlsx|csv (padrão xlsx)
func (h *FinanceHandler) Export(c *gin.Context) {
	p, ok := period(c, h.tz)
	if !ok {
		return
	}

	r, err := h.shop.Execute(c.Request.Context(), p, queryBool(c, "completed_only"))
	if err != nil {
		respond(c, err, "failed_to_load_report", "Erro ao carregar relatório.")
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	var (
		data        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		data, err = report.EntriesXLSX(*r)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		data, err = report.EntriesCSV(*r)
		contentType = "text/csv; charset=utf-8"
	default:
		httperr.BadRequest(c, "invalid_format", "Formato inválido.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar relatório.")
		return
	}

	filename := fmt.Sprintf("financeiro_%s_%s.%s", p.StartDate, p.EndDate, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// ======================================================
// PAYOUTS
// ======================================================

func (h *FinanceHandler) ListPayouts(c *gin.Context) {
	p, ok := period(c, h.tz)
	if !ok {
		return
	}

	payouts, err := h.payouts.Execute(c.Request.Context(), p, queryUint(c, "barber_id"))
	if err != nil {
		respond(c, err, "failed_to_list_payouts", "Erro ao listar pagamentos.")
		return
	}
	c.JSON(http.StatusOK, payouts)
}

func (h *FinanceHandler) AddPayout(c *gin.Context) {
	var in forms.PayoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, PayoutResult{Error: "Dados inválidos."})
		return
	}

	p, err := h.add.Execute(c.Request.Context(), actor(c), in)
	if err != nil {
		h.payoutFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, PayoutResult{Success: true, Payout: p})
}

func (h *FinanceHandler) ReversePayout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.reverse.Execute(c.Request.Context(), actor(c), id)
	if err != nil {
		h.payoutFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, PayoutResult{Success: true, Payout: p})
}

// payoutFailure mantém o formato {success,error} com o status HTTP adequado
func (h *FinanceHandler) payoutFailure(c *gin.Context, err error) {
	if fe, ok := forms.AsValidation(err); ok {
		msgs := make([]string, 0, len(fe))
		for _, f := range fe.Fields() {
			msgs = append(msgs, fe[f])
		}
		c.JSON(http.StatusUnprocessableEntity, PayoutResult{Error: strings.Join(msgs, " ")})
		return
	}

	status, message := httperr.Describe(err)
	if status == http.StatusInternalServerError {
		httperr.Log("failed_to_save_payout", err)
		message = "Erro ao registrar pagamento."
	}
	c.JSON(status, PayoutResult{Error: message})
}
