package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors mapeia o nome JSON do campo para a mensagem exibida
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidationError é devolvido por Submit/Validate quando há erros de campo
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields.Fields(), ", "))
}

func AsValidation(err error) (FieldErrors, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}

func resultOf(fe FieldErrors) error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// check roda as tags do struct e converte para FieldErrors
func check(s any) FieldErrors {
	fe := FieldErrors{}

	err := validate.Struct(s)
	if err == nil {
		return fe
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add("_form", err.Error())
		return fe
	}

	for _, e := range verrs {
		fe.Add(e.Field(), messageFor(e))
	}
	return fe
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "E-mail inválido."
	case "min":
		return fmt.Sprintf("Valor mínimo: %s.", e.Param())
	case "max":
		return fmt.Sprintf("Valor máximo: %s.", e.Param())
	case "oneof":
		return fmt.Sprintf("Valor deve ser um de: %s.", e.Param())
	case "datetime":
		return fmt.Sprintf("Formato esperado: %s.", e.Param())
	}
	return "Valor inválido."
}
