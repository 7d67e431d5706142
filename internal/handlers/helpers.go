package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
	financeUC "github.com/BruksfildServices01/barbershop-admin/internal/usecase/finance"
)

// respond traduz erros de formulário (422), de negócio e de banco
func respond(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if fe, ok := forms.AsValidation(err); ok {
		httperr.Validation(c, fe)
		return
	}
	httperr.FromError(c, err, fallbackCode, fallbackMessage)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// queryUint: ausente ou inválido vira nil
func queryUint(c *gin.Context, name string) *uint {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

// period lê start_date/end_date; sem eles usa o mês corrente
func period(c *gin.Context, tz string) (financeUC.Period, bool) {
	p := financeUC.MonthToDate(tz)
	if v := strings.TrimSpace(c.Query("start_date")); v != "" {
		p.StartDate = v
	}
	if v := strings.TrimSpace(c.Query("end_date")); v != "" {
		p.EndDate = v
	}
	if _, _, err := p.Bounds(tz); err != nil {
		respond(c, err, "invalid_date_range", "Período inválido.")
		return p, false
	}
	return p, true
}

func today(tz string) string {
	return timezone.NowIn(tz).Format(timezone.DateLayout)
}

func actor(c *gin.Context) financeUC.Actor {
	return financeUC.Actor{
		UserID: middleware.UserID(c),
		Name:   middleware.UserName(c),
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}
