package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// ParseStatus aceita variações de caixa ("Completed", "NO-SHOW")
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, true
	}
	return "", false
}

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeAppointment Type = "appointment"
	TypeWalkIn      Type = "walk-in"
)

func ParseType(s string) (Type, bool) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeAppointment, TypeWalkIn:
		return t, true
	}
	return "", false
}

// ===============================
// Validations
// ===============================

// só agendamentos em aberto mudam de estado
func canLeaveScheduled(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error   { return canLeaveScheduled(current) }
func CanComplete(current Status) error { return canLeaveScheduled(current) }
func CanNoShow(current Status) error   { return canLeaveScheduled(current) }

func InitialStatus() Status {
	return StatusScheduled
}
