package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/abruzzobarber/abruzzo-api/internal/domain/appointment"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
	"github.com/abruzzobarber/abruzzo-api/internal/validators"
)

// ======================================================
// STEPS
// ======================================================

type Step int

const (
	StepSelectBarber Step = iota
	StepSelectService
	StepSelectDateTime
	StepContactInfo
	StepConfirmation
)

var stepNames = [...]string{
	"select_barber",
	"select_service",
	"select_datetime",
	"contact_info",
	"confirmation",
}

func (s Step) String() string {
	if s < StepSelectBarber || s > StepConfirmation {
		return "unknown"
	}
	return stepNames[s]
}

// ======================================================
// FIELD ERRORS
// ======================================================

// FieldErrors junta los errores de validación estricta de ambos
// campos del paso de contacto; los dos pueden aparecer a la vez.
type FieldErrors struct {
	Name  string `json:"client_name,omitempty"`
	Phone string `json:"client_phone,omitempty"`
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, 2)
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Phone != "" {
		parts = append(parts, e.Phone)
	}
	return strings.Join(parts, "; ")
}

// ======================================================
// WIZARD
// ======================================================

// Wizard es la máquina de estados de la reserva: cinco pasos
// lineales, sin saltos. Confirmación solo se alcanza por un envío
// exitoso, nunca avanzando.
type Wizard struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	BarberID  *uint  `json:"barber_id"`
	ServiceID *uint  `json:"service_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	AppointmentID *uint     `json:"appointment_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func New(id string, now time.Time) *Wizard {
	return &Wizard{
		ID:        id,
		Step:      StepSelectBarber,
		CreatedAt: now,
	}
}

// ======================================================
// SELECTIONS
// ======================================================

func (w *Wizard) SelectBarber(id uint) {
	w.BarberID = &id
}

func (w *Wizard) SelectService(id uint) {
	w.ServiceID = &id
}

// SelectDateTime rechaza fechas pasadas, domingos y horarios fuera
// de la franja fija.
func (w *Wizard) SelectDateTime(date, slot string, now time.Time) error {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	if date < now.Format("2006-01-02") {
		return httperr.ErrBusiness("date_in_past")
	}

	if d.Weekday() == time.Sunday {
		return httperr.ErrBusiness("closed_on_sunday")
	}

	if !domain.IsSlot(slot) {
		return httperr.ErrBusiness("invalid_time_slot")
	}

	w.Date = date
	w.Time = slot
	return nil
}

func (w *Wizard) SetContact(name, phone string) {
	w.ClientName = name
	w.ClientPhone = phone
}

// ======================================================
// TRANSITIONS
// ======================================================

// CanAdvance indica si el paso actual está completo. En el paso de
// contacto es el chequeo barato de no-vacío; la validación estricta
// ocurre recién al enviar.
func (w *Wizard) CanAdvance(now time.Time) bool {
	switch w.Step {
	case StepSelectBarber:
		return w.BarberID != nil
	case StepSelectService:
		return w.ServiceID != nil
	case StepSelectDateTime:
		if w.Date == "" || w.Time == "" {
			return false
		}
		if w.Date < now.Format("2006-01-02") {
			return false
		}
		d, err := time.ParseInLocation("2006-01-02", w.Date, now.Location())
		return err == nil && d.Weekday() != time.Sunday
	case StepContactInfo:
		return strings.TrimSpace(w.ClientName) != "" &&
			strings.TrimSpace(w.ClientPhone) != ""
	default:
		return false
	}
}

// Advance incrementa el paso en 0–2. En el paso de contacto valida
// estricto ambos campos y dispara el envío: un turno nuevo en estado
// pending. Si la capa de datos falla, el asistente queda donde está
// y no se reintenta.
func (w *Wizard) Advance(
	ctx context.Context,
	repo Repository,
	now time.Time,
) error {

	switch w.Step {
	case StepSelectBarber, StepSelectService, StepSelectDateTime:
		if !w.CanAdvance(now) {
			return httperr.ErrBusiness("step_incomplete")
		}
		w.Step++
		return nil

	case StepContactInfo:
		return w.submit(ctx, repo)

	default:
		return httperr.ErrBusiness("wizard_finished")
	}
}

// Retreat retrocede un paso, con piso en el primero. Nunca valida.
// Confirmación es terminal: desde ahí no se vuelve.
func (w *Wizard) Retreat() {
	if w.Step > StepSelectBarber && w.Step < StepConfirmation {
		w.Step--
	}
}

// ======================================================
// SUBMIT
// ======================================================

func (w *Wizard) submit(ctx context.Context, repo Repository) error {
	name, nameErr := validators.ClientName(w.ClientName)
	phone, phoneErr := validators.ClientPhone(w.ClientPhone)

	if nameErr != nil || phoneErr != nil {
		fe := &FieldErrors{}
		if nameErr != nil {
			fe.Name = nameErr.Error()
		}
		if phoneErr != nil {
			fe.Phone = phoneErr.Error()
		}
		return fe
	}

	// Defensivo: con el gating de los pasos anteriores esto no
	// debería dispararse.
	if w.BarberID == nil || w.ServiceID == nil || w.Date == "" || w.Time == "" {
		return httperr.ErrBusiness("precondition_failed")
	}

	ap := &models.Appointment{
		BarberID:    *w.BarberID,
		ServiceID:   *w.ServiceID,
		Date:        w.Date,
		Time:        w.Time,
		ClientName:  name,
		ClientPhone: phone,
		Status:      string(domain.InitialStatus()),
	}

	if err := repo.CreateAppointment(ctx, ap); err != nil {
		return err
	}

	w.AppointmentID = &ap.ID
	w.Step = StepConfirmation
	return nil
}
