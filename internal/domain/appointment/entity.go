package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func current(ap *models.Appointment) Status {
	st, _ := ParseStatus(ap.Status)
	return st
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(current(ap)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(current(ap)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanNoShow(current(ap)); err != nil {
		return err
	}
	ap.Status = string(StatusNoShow)
	return nil
}

// Overlaps indica se [aStart, aStart+aDur) cruza [bStart, bStart+bDur), em minutos
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// MinutesOf converte HH:MM em minutos desde a meia-noite
func MinutesOf(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ConflictsWith verifica sobreposição do candidato com os agendamentos do dia
func ConflictsWith(candidate models.Appointment, sameDay []models.Appointment) (bool, error) {
	start, err := MinutesOf(candidate.Time)
	if err != nil {
		return false, err
	}
	for _, other := range sameDay {
		if other.ID == candidate.ID && candidate.ID != 0 {
			continue
		}
		otherStart, err := MinutesOf(other.Time)
		if err != nil {
			continue
		}
		if Overlaps(start, max(candidate.Duration, 1), otherStart, max(other.Duration, 1)) {
			return true, nil
		}
	}
	return false, nil
}
