package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Validation responde 422 com os erros por campo do formulário
func Validation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:    "validation_failed",
		Message: "Verifique os campos destacados.",
		Fields:  fields,
	})
}

// ======================================================
// MAPEAMENTO DE REGRAS DE NEGÓCIO
// ======================================================

type businessMapping struct {
	status  int
	message string
}

var businessMessages = map[string]businessMapping{
	"time_conflict":           {http.StatusConflict, "Este barbeiro já tem um agendamento neste horário."},
	"invalid_state":           {http.StatusBadRequest, "Operação não permitida no estado atual."},
	"appointment_not_found":   {http.StatusNotFound, "Agendamento não encontrado."},
	"barber_not_found":        {http.StatusNotFound, "Barbeiro não encontrado."},
	"barber_inactive":         {http.StatusBadRequest, "Barbeiro inativo não pode receber agendamentos."},
	"client_not_found":        {http.StatusNotFound, "Cliente não encontrado."},
	"service_not_found":       {http.StatusNotFound, "Serviço não encontrado."},
	"review_not_found":        {http.StatusNotFound, "Avaliação não encontrada."},
	"payout_not_found":        {http.StatusNotFound, "Pagamento não encontrado."},
	"payout_already_reversed": {http.StatusConflict, "Este pagamento já foi estornado."},
	"cannot_reverse_reversal": {http.StatusBadRequest, "Um estorno não pode ser estornado."},
	"invalid_date_range":      {http.StatusBadRequest, "Período inválido."},
	"invalid_date_or_time":    {http.StatusBadRequest, "Data ou hora inválida."},
	"email_already_used":      {http.StatusConflict, "E-mail já cadastrado."},
	"entity_in_use":           {http.StatusConflict, "Registro em uso por outros dados."},
	"empty_file":              {http.StatusBadRequest, "Arquivo vazio."},
	"invalid_image_type":      {http.StatusBadRequest, "Envie uma imagem JPEG, PNG ou WebP."},
	"invalid_object_key":      {http.StatusBadRequest, "Nome de arquivo inválido."},
	"invalid_bucket":          {http.StatusBadRequest, "Tipo de imagem inválido."},
	"storage_disabled":        {http.StatusServiceUnavailable, "Armazenamento de imagens não configurado."},
	"invalid_credentials":     {http.StatusUnauthorized, "E-mail ou senha inválidos."},
	"too_many_attempts":       {http.StatusTooManyRequests, "Muitas tentativas. Tente novamente mais tarde."},
	"user_not_found":          {http.StatusNotFound, "Usuário não encontrado."},
}

// Describe resolve status e mensagem de um erro conhecido.
// Erros desconhecidos retornam 500 e mensagem vazia.
func Describe(err error) (int, string) {
	code, ok := codeOf(err)
	if !ok {
		return http.StatusInternalServerError, ""
	}
	if m, ok := businessMessages[code]; ok {
		return m.status, m.message
	}
	return http.StatusBadRequest, ""
}

func codeOf(err error) (string, bool) {
	var be BusinessError
	switch {
	case errors.As(err, &be):
		return be.Code, true
	case IsUniqueViolation(err) || IsExclusionConflict(err):
		return "time_conflict", true
	case IsForeignKeyViolation(err):
		return "entity_in_use", true
	}
	return "", false
}

func Log(code string, err error) {
	log.Printf("%s: %v", code, err)
}

// FromError traduz erros de domínio/banco para a resposta HTTP.
// Erros desconhecidos são logados e viram 500 com o código informado.
func FromError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	code, ok := codeOf(err)
	if !ok {
		Log(fallbackCode, err)
		Internal(c, fallbackCode, fallbackMessage)
		return
	}

	status, message := Describe(err)
	if message == "" {
		message = fallbackMessage
	}
	Write(c, status, code, message)
}
