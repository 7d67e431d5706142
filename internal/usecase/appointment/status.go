package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type Action string

const (
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionNoShow   Action = "no_show"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actorID *uint,
	appointmentID uint,
	action Action,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	var auditAction string
	switch action {
	case ActionComplete:
		if err := domain.Complete(ap); err != nil {
			return nil, err
		}
		if err := uc.repo.CompleteAppointment(ctx, ap); err != nil {
			return nil, err
		}
		auditAction = "appointment_completed"

	case ActionCancel:
		if err := domain.Cancel(ap); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		auditAction = "appointment_cancelled"

	case ActionNoShow:
		if err := domain.MarkNoShow(ap); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		auditAction = "appointment_no_show"

	default:
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   auditAction,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
