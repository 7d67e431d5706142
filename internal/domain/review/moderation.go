package review

import (
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// State de moderação. "deleted" não é persistido: rejeitar apaga a linha.
type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
)

func StateOf(r models.Review) State {
	if r.Approved {
		return StateApproved
	}
	return StatePending
}

// Approve: pending → approved (terminal)
func Approve(r *models.Review) error {
	if StateOf(*r) != StatePending {
		return httperr.ErrBusiness("invalid_state")
	}
	r.Approved = true
	return nil
}

// CanReject: só pendentes podem ser rejeitadas (e apagadas)
func CanReject(r models.Review) error {
	if StateOf(r) != StatePending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// AverageRating retorna nil quando não há avaliações aprovadas
func AverageRating(reviews []models.Review) *float64 {
	sum, n := 0, 0
	for _, r := range reviews {
		if !r.Approved {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
