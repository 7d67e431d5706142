package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barbershop-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

// ======================================================
// ESTADOS
// ======================================================

type State string

const (
	StateUnedited   State = "unedited"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateSubmitted  State = "submitted"
)

// ClientMode só existe para walk-in: cliente existente ou cadastro na hora
type ClientMode string

const (
	ClientExisting ClientMode = "existing"
	ClientNew      ClientMode = "new"
)

// ======================================================
// VALORES
// ======================================================

type appointmentValues struct {
	Type      string `json:"type" validate:"required,oneof=appointment walk-in"`
	ClientID  uint   `json:"client_id" validate:"required"`
	BarberID  uint   `json:"barber_id" validate:"required"`
	ServiceID uint   `json:"service_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes     string `json:"notes" validate:"max=500"`
}

// NewClient é enviado ao callback quando o walk-in cadastra o cliente na hora
type NewClient struct {
	Name  string
	Phone string
}

// SubmitFunc recebe o registro montado; ID zero significa criação
type SubmitFunc func(ap models.Appointment, newClient *NewClient) error

// ======================================================
// FORM
// ======================================================

type AppointmentForm struct {
	catalog *Catalog

	id       uint
	values   appointmentValues
	original models.Appointment

	clientMode     ClientMode
	newClientName  string
	newClientPhone string

	price      decimal.Decimal
	duration   int
	commission decimal.Decimal

	state  State
	errors FieldErrors
}

func NewAppointmentForm(catalog *Catalog) *AppointmentForm {
	return &AppointmentForm{
		catalog:    catalog,
		values:     appointmentValues{Type: string(domain.TypeAppointment), Status: string(domain.InitialStatus())},
		clientMode: ClientExisting,
		price:      decimal.Zero,
		commission: decimal.Zero,
		state:      StateUnedited,
		errors:     FieldErrors{},
	}
}

// EditAppointmentForm carrega um agendamento existente preservando o ID
// e os valores derivados já gravados.
func EditAppointmentForm(catalog *Catalog, ap models.Appointment) *AppointmentForm {
	f := NewAppointmentForm(catalog)
	f.id = ap.ID
	f.original = ap
	f.values = appointmentValues{
		Type:      ap.Type,
		ClientID:  ap.ClientID,
		BarberID:  ap.BarberID,
		ServiceID: ap.ServiceID,
		Date:      ap.Date,
		Time:      ap.Time,
		Status:    ap.Status,
		Notes:     ap.Notes,
	}
	f.price = ap.Price
	f.duration = ap.Duration
	f.commission = ap.CommissionAmount
	return f
}

func (f *AppointmentForm) State() State           { return f.state }
func (f *AppointmentForm) Errors() FieldErrors    { return f.errors }
func (f *AppointmentForm) Type() domain.Type      { return domain.Type(f.values.Type) }
func (f *AppointmentForm) ClientID() uint         { return f.values.ClientID }
func (f *AppointmentForm) BarberID() uint         { return f.values.BarberID }
func (f *AppointmentForm) ServiceID() uint        { return f.values.ServiceID }
func (f *AppointmentForm) ClientMode() ClientMode { return f.clientMode }

// Derived retorna preço, duração e comissão calculados
func (f *AppointmentForm) Derived() (price decimal.Decimal, duration int, commission decimal.Decimal) {
	return f.price, f.duration, f.commission
}

// SetType troca o tipo; toda troca efetiva limpa o cliente e o modo walk-in,
// mas mantém barbeiro e serviço.
func (f *AppointmentForm) SetType(t domain.Type) {
	if string(t) == f.values.Type {
		return
	}
	f.values.Type = string(t)
	f.values.ClientID = 0
	f.clientMode = ClientExisting
	f.newClientName = ""
	f.newClientPhone = ""
}

func (f *AppointmentForm) SetClient(id uint) {
	f.values.ClientID = id
	f.clientMode = ClientExisting
	f.newClientName = ""
	f.newClientPhone = ""
}

// SetNewClient só vale para walk-in
func (f *AppointmentForm) SetNewClient(name, phone string) {
	if f.Type() != domain.TypeWalkIn {
		return
	}
	f.values.ClientID = 0
	f.clientMode = ClientNew
	f.newClientName = strings.TrimSpace(name)
	f.newClientPhone = strings.TrimSpace(phone)
}

func (f *AppointmentForm) SetBarber(id uint) {
	f.values.BarberID = id
	f.recompute()
}

func (f *AppointmentForm) SetService(id uint) {
	f.values.ServiceID = id
	f.recompute()
}

func (f *AppointmentForm) SetDate(date string)   { f.values.Date = strings.TrimSpace(date) }
func (f *AppointmentForm) SetTime(hm string)     { f.values.Time = strings.TrimSpace(hm) }
func (f *AppointmentForm) SetNotes(notes string) { f.values.Notes = notes }

func (f *AppointmentForm) SetStatus(st domain.Status) {
	f.values.Status = string(st)
}

// recompute sempre sobrescreve os derivados; não existe ajuste manual
func (f *AppointmentForm) recompute() {
	svc, ok := f.catalog.Service(f.values.ServiceID)
	if !ok {
		return
	}

	f.price = svc.Price
	f.duration = svc.Duration

	rate := decimal.Zero
	if b, ok := f.catalog.Barber(f.values.BarberID); ok {
		rate = b.CommissionRate
	}
	f.commission = finance.Commission(f.price, rate)
}

// ======================================================
// SUBMIT
// ======================================================

func (f *AppointmentForm) validate() FieldErrors {
	fe := check(f.values)

	// walk-in com cliente novo: o nome substitui a seleção
	if f.Type() == domain.TypeWalkIn && f.clientMode == ClientNew {
		delete(fe, "client_id")
		if f.newClientName == "" {
			fe.Add("client_id", "Informe o nome do cliente.")
		}
	}

	if f.values.BarberID != 0 {
		if _, ok := f.catalog.Barber(f.values.BarberID); !ok {
			fe.Add("barber_id", "Barbeiro não encontrado.")
		}
	}
	if f.values.ServiceID != 0 {
		if _, ok := f.catalog.Service(f.values.ServiceID); !ok {
			fe.Add("service_id", "Serviço não encontrado.")
		}
	}

	return fe
}

// Submit valida e, se tudo estiver certo, chama fn uma única vez.
// Em caso de erro o formulário continua editável.
func (f *AppointmentForm) Submit(fn SubmitFunc) error {
	if f.state == StateSubmitted {
		return nil
	}

	f.state = StateValidating
	f.errors = f.validate()
	if len(f.errors) > 0 {
		f.state = StateRejected
		return resultOf(f.errors)
	}

	var nc *NewClient
	if f.Type() == domain.TypeWalkIn && f.clientMode == ClientNew {
		nc = &NewClient{Name: f.newClientName, Phone: f.newClientPhone}
	}

	if err := fn(f.record(), nc); err != nil {
		f.state = StateRejected
		return err
	}

	f.state = StateSubmitted
	return nil
}

func (f *AppointmentForm) record() models.Appointment {
	ap := f.original
	ap.ID = f.id
	ap.Type = f.values.Type
	ap.ClientID = f.values.ClientID
	ap.BarberID = f.values.BarberID
	ap.ServiceID = f.values.ServiceID
	ap.Date = f.values.Date
	ap.Time = f.values.Time
	ap.Status = f.values.Status
	ap.Notes = f.values.Notes
	ap.Price = f.price
	ap.Duration = f.duration
	ap.CommissionAmount = f.commission

	// associações carregadas na edição não devem ir para o Save
	ap.Client = models.Client{}
	ap.Barber = models.Barber{}
	ap.Service = models.Service{}
	return ap
}
