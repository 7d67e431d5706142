package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SaveAppointmentInput struct {
	ActorID *uint

	// zero cria um novo agendamento
	AppointmentID uint
	WalkIn        bool

	Fields forms.AppointmentInput
}

// ======================================================
// USE CASE
// ======================================================

type SaveAppointment struct {
	repo    domain.Repository
	catalog CatalogSource
	audit   *audit.Dispatcher
	tz      string
}

func NewSaveAppointment(
	repo domain.Repository,
	catalog CatalogSource,
	audit *audit.Dispatcher,
	tz string,
) *SaveAppointment {
	return &SaveAppointment{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		tz:      tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveAppointment) Execute(
	ctx context.Context,
	in SaveAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Formulário (novo, walk-in ou edição)
	// --------------------------------------------------
	var (
		form     *forms.AppointmentForm
		existing *models.Appointment
	)

	if in.AppointmentID == 0 {
		cat, err := loadCatalog(ctx, uc.catalog, true)
		if err != nil {
			return nil, err
		}
		if in.WalkIn {
			form = forms.NewWalkInForm(cat, timezone.NowIn(uc.tz))
		} else {
			form = forms.NewAppointmentForm(cat)
		}
	} else {
		ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, err
		}
		// status terminal não aceita edição
		if st, _ := domain.ParseStatus(ap.Status); st != domain.StatusScheduled {
			return nil, httperr.ErrBusiness("invalid_state")
		}
		existing = ap

		cat, err := loadCatalog(ctx, uc.catalog, false)
		if err != nil {
			return nil, err
		}
		form = forms.EditAppointmentForm(cat, *ap)
	}

	in.Fields.Apply(form)

	// --------------------------------------------------
	// 2️⃣ Submit → gravação
	// --------------------------------------------------
	var saved, attempted models.Appointment

	err := form.Submit(func(ap models.Appointment, nc *forms.NewClient) error {
		attempted = ap

		// novo registro nasce agendado ou concluído
		completing := false
		if existing == nil {
			switch ap.Status {
			case string(domain.StatusScheduled):
			case string(domain.StatusCompleted):
				completing = true
			default:
				return httperr.ErrBusiness("invalid_state")
			}
		} else {
			completing = ap.Status == string(domain.StatusCompleted)
		}

		// cliente: cadastro na hora (walk-in) ou existente
		if nc != nil {
			client := &models.Client{Name: nc.Name, Phone: nc.Phone}
			if err := uc.repo.CreateClient(ctx, client); err != nil {
				return err
			}
			ap.ClientID = client.ID
		} else if _, err := uc.repo.GetClient(ctx, ap.ClientID); err != nil {
			return err
		}

		if ap.Status == string(domain.StatusScheduled) {
			if err := uc.assertNoConflict(ctx, ap); err != nil {
				return err
			}
		}

		switch {
		case completing:
			if err := uc.repo.CompleteAppointment(ctx, &ap); err != nil {
				return err
			}
		case existing == nil:
			if err := uc.repo.CreateAppointment(ctx, &ap); err != nil {
				return err
			}
		default:
			if err := uc.repo.UpdateAppointment(ctx, &ap); err != nil {
				return err
			}
		}

		saved = ap
		return nil
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			uc.dispatch(in.ActorID, "appointment_conflict", nil, map[string]any{
				"barber_id": attempted.BarberID,
				"date":      attempted.Date,
				"time":      attempted.Time,
			})
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	action := "appointment_updated"
	if existing == nil {
		action = "appointment_created"
	}
	uc.dispatch(in.ActorID, action, &saved.ID, map[string]any{
		"type":   saved.Type,
		"status": saved.Status,
	})

	return &saved, nil
}

func (uc *SaveAppointment) assertNoConflict(ctx context.Context, ap models.Appointment) error {
	sameDay, err := uc.repo.ListScheduledForBarberOnDate(ctx, ap.BarberID, ap.Date, ap.ID)
	if err != nil {
		return err
	}

	conflict, err := domain.ConflictsWith(ap, sameDay)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if conflict {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (uc *SaveAppointment) dispatch(actor *uint, action string, id *uint, meta any) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   actor,
		Action:   action,
		Entity:   "appointment",
		EntityID: id,
		Metadata: meta,
	})
}
