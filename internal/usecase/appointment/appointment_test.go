package appointment

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

func baseInput() forms.AppointmentInput {
	return forms.AppointmentInput{
		ClientID:  ptr(uint(5)),
		BarberID:  ptr(uint(10)),
		ServiceID: ptr(uint(1)),
		Date:      ptr("2024-05-10"),
		Time:      ptr("10:00"),
	}
}

func TestSaveCreatesWithDerivedFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "Europe/Istanbul")

	ap, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: baseInput()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID == 0 || repo.created != 1 {
		t.Fatalf("appointment not created: %+v", ap)
	}
	if !ap.Price.Equal(decimal.NewFromInt(95)) || ap.Duration != 30 {
		t.Fatalf("price=%s duration=%d", ap.Price, ap.Duration)
	}
	if !ap.CommissionAmount.Equal(decimal.RequireFromString("47.5")) {
		t.Fatalf("commission=%s", ap.CommissionAmount)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("status=%s", ap.Status)
	}
}

func TestSaveRejectsInvalidFieldsWithoutWriting(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	in := baseInput()
	in.ClientID = nil
	in.Time = ptr("25:99")

	_, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: in})
	fe, ok := forms.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := fe["client_id"]; !ok {
		t.Fatalf("missing client_id error: %v", fe)
	}
	if _, ok := fe["time"]; !ok {
		t.Fatalf("missing time error: %v", fe)
	}
	if repo.created != 0 {
		t.Fatal("store must not be written")
	}
}

func TestSaveInactiveBarberRejectedForNewAppointment(t *testing.T) {
	uc := NewSaveAppointment(newFakeRepo(), fakeCatalog{}, nil, "")

	in := baseInput()
	in.BarberID = ptr(uint(12))

	_, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: in})
	fe, ok := forms.AsValidation(err)
	if !ok || fe["barber_id"] == "" {
		t.Fatalf("expected barber_id error, got %v", err)
	}
}

func TestSaveDetectsOverlap(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	if _, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: baseInput()}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := baseInput()
	in.Time = ptr("10:15")
	_, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: in})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}

	in.Time = ptr("10:30")
	if _, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: in}); err != nil {
		t.Fatalf("adjacent slot should be free: %v", err)
	}
}

func TestSaveMapsStoreUniqueViolation(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = &pgconn.PgError{Code: "23505"}
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	_, err := uc.Execute(context.Background(), SaveAppointmentInput{Fields: baseInput()})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestSaveWalkInCreatesClientInline(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "Europe/Istanbul")

	in := forms.AppointmentInput{
		ClientName: ptr("Burak"),
		BarberID:   ptr(uint(10)),
		ServiceID:  ptr(uint(2)),
	}
	ap, err := uc.Execute(context.Background(), SaveAppointmentInput{WalkIn: true, Fields: in})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Type != string(domain.TypeWalkIn) {
		t.Fatalf("type=%s", ap.Type)
	}
	c, ok := repo.clients[ap.ClientID]
	if !ok || c.Name != "Burak" {
		t.Fatalf("inline client not created: %+v", ap)
	}
	if ap.Date == "" || ap.Time == "" {
		t.Fatal("walk-in should default date and time")
	}
}

func TestSaveEditPreservesIDAndCompletes(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[7] = &models.Appointment{
		ID: 7, ClientID: 5, BarberID: 12, ServiceID: 1,
		Date: "2024-05-10", Time: "09:00", Status: "scheduled", Type: "appointment",
		Price: decimal.NewFromInt(95), Duration: 30, CommissionAmount: decimal.NewFromInt(38),
	}
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	ap, err := uc.Execute(context.Background(), SaveAppointmentInput{
		AppointmentID: 7,
		Fields:        forms.AppointmentInput{Status: ptr("completed")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID != 7 || repo.completed != 1 || repo.created != 0 {
		t.Fatalf("edit should complete in place: id=%d completed=%d created=%d", ap.ID, repo.completed, repo.created)
	}
}

func TestSaveEditFromTerminalStatusRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[7] = &models.Appointment{
		ID: 7, ClientID: 5, BarberID: 10, ServiceID: 1,
		Date: "2024-05-10", Time: "09:00", Status: "cancelled", Type: "appointment",
	}
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	_, err := uc.Execute(context.Background(), SaveAppointmentInput{
		AppointmentID: 7,
		Fields:        forms.AppointmentInput{Status: ptr("scheduled")},
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestSaveEditCompletedWithoutStatusChangeRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[7] = &models.Appointment{
		ID: 7, ClientID: 5, BarberID: 10, ServiceID: 1,
		Date: "2024-05-10", Time: "09:00", Status: "completed", Type: "appointment",
		Price: decimal.NewFromInt(95), Duration: 30, CommissionAmount: decimal.RequireFromString("47.5"),
	}
	uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

	_, err := uc.Execute(context.Background(), SaveAppointmentInput{
		AppointmentID: 7,
		Fields:        forms.AppointmentInput{ServiceID: ptr(uint(2))},
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if repo.updated != 0 || repo.completed != 0 {
		t.Fatalf("terminal row must not be written: updated=%d completed=%d", repo.updated, repo.completed)
	}
	if !repo.appointments[7].Price.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("price changed: %s", repo.appointments[7].Price)
	}
}

func TestSaveCreateInTerminalStatus(t *testing.T) {
	tests := []struct {
		name   string
		walkIn bool
		status string
		err    string
	}{
		{"walk-in completed", true, "completed", ""},
		{"appointment completed", false, "completed", ""},
		{"appointment cancelled", false, "cancelled", "invalid_state"},
		{"walk-in no show", true, "no-show", "invalid_state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewSaveAppointment(repo, fakeCatalog{}, nil, "")

			in := baseInput()
			in.Status = ptr(tt.status)
			if tt.walkIn {
				in.ClientID = nil
				in.ClientName = ptr("Burak")
			}
			ap, err := uc.Execute(context.Background(), SaveAppointmentInput{WalkIn: tt.walkIn, Fields: in})

			if tt.err != "" {
				if !httperr.IsBusiness(err, tt.err) {
					t.Fatalf("expected %s, got %v", tt.err, err)
				}
				if repo.created != 0 || repo.completed != 0 || len(repo.clients) != 1 {
					t.Fatalf("nothing should be written: created=%d completed=%d clients=%d",
						repo.created, repo.completed, len(repo.clients))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.ID == 0 || ap.Status != tt.status {
				t.Fatalf("unexpected appointment: %+v", ap)
			}
			if repo.completed != 1 || repo.created != 0 {
				t.Fatalf("completed create must bump counters: completed=%d created=%d", repo.completed, repo.created)
			}
		})
	}
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		action Action
		want   string
		err    string
	}{
		{"complete", "scheduled", ActionComplete, "completed", ""},
		{"cancel", "scheduled", ActionCancel, "cancelled", ""},
		{"no show", "scheduled", ActionNoShow, "no-show", ""},
		{"complete twice", "completed", ActionComplete, "", "invalid_state"},
		{"cancel completed", "completed", ActionCancel, "", "invalid_state"},
		{"unknown action", "scheduled", Action("archive"), "", "invalid_state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.appointments[1] = &models.Appointment{ID: 1, Status: tt.from}

			ap, err := NewChangeStatus(repo, nil).Execute(context.Background(), nil, 1, tt.action)
			if tt.err != "" {
				if !httperr.IsBusiness(err, tt.err) {
					t.Fatalf("expected %s, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.Status != tt.want || repo.appointments[1].Status != tt.want {
				t.Fatalf("status=%s, want %s", ap.Status, tt.want)
			}
		})
	}
}

func TestChangeStatusCompleteUsesCounterPath(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, Status: "scheduled"}

	if _, err := NewChangeStatus(repo, nil).Execute(context.Background(), nil, 1, ActionComplete); err != nil {
		t.Fatal(err)
	}
	if repo.completed != 1 || repo.updated != 0 {
		t.Fatalf("completed=%d updated=%d", repo.completed, repo.updated)
	}
}

func TestListNeverNil(t *testing.T) {
	apps, err := NewListAppointments(newFakeRepo()).Execute(context.Background(), domain.ListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if apps == nil {
		t.Fatal("expected empty slice")
	}
}

func TestListRejectsInvertedRange(t *testing.T) {
	_, err := NewListAppointments(newFakeRepo()).Execute(context.Background(), domain.ListFilter{
		StartDate: "2024-06-01",
		EndDate:   "2024-05-01",
	})
	if !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("expected invalid_date_range, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	q, err := NewQuoteAppointment(fakeCatalog{}).Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Commission.Equal(decimal.RequireFromString("47.5")) ||
		!q.ShopRevenue.Equal(decimal.RequireFromString("47.5")) {
		t.Fatalf("quote=%+v", q)
	}
	if q.Display != "₺95.00" {
		t.Fatalf("display=%s", q.Display)
	}

	if _, err := NewQuoteAppointment(fakeCatalog{}).Execute(context.Background(), 99, 10); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestDashboardRejectsInvertedRange(t *testing.T) {
	_, err := NewDashboard(newFakeRepo(), "").Execute(context.Background(), "2024-05-02", "2024-05-01")
	if !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("expected invalid_date_range, got %v", err)
	}
}

func TestDashboardEmpty(t *testing.T) {
	d, err := NewDashboard(newFakeRepo(), "").Execute(context.Background(), "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatal(err)
	}
	if d.Upcoming == nil || d.TopServices == nil || len(d.ByStatus) != 0 {
		t.Fatalf("dashboard=%+v", d)
	}
}
