package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abruzzobarber/abruzzo-api/internal/audit"
	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/session"
	"github.com/abruzzobarber/abruzzo-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler expone la máquina de estados de la reserva por
// sesión: cada operación carga el asistente del store, aplica la
// transición y lo vuelve a guardar.
type BookingHandler struct {
	store  session.Store
	repo   booking.Repository
	config *config.Config
	audit  *audit.Dispatcher
}

func NewBookingHandler(
	store session.Store,
	repo booking.Repository,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		store:  store,
		repo:   repo,
		config: cfg,
		audit:  dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectBarberRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`
}

type SelectServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

type SelectDateTimeRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

type ContactRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

// ======================================================
// SESSION LIFECYCLE
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	now := timezone.NowIn(h.config.Timezone)
	w := booking.New(uuid.NewString(), now)

	if err := h.store.Save(c.Request.Context(), w); err != nil {
		httperr.Internal(c, "failed_to_start_booking", "Error al iniciar la reserva.")
		return
	}

	c.JSON(http.StatusCreated, h.view(w))
}

func (h *BookingHandler) Get(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.view(w))
}

// ======================================================
// SELECTIONS
// ======================================================

func (h *BookingHandler) SelectBarber(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req SelectBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	// Solo barberos activos son elegibles.
	if _, err := h.repo.GetActiveBarber(c.Request.Context(), req.BarberID); err != nil {
		httperr.BadRequest(c, "barber_not_found", "Barbero no disponible.")
		return
	}

	w.SelectBarber(req.BarberID)
	h.save(c, w)
}

func (h *BookingHandler) SelectService(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if _, err := h.repo.GetService(c.Request.Context(), req.ServiceID); err != nil {
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	w.SelectService(req.ServiceID)
	h.save(c, w)
}

func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req SelectDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	now := timezone.NowIn(h.config.Timezone)
	if err := w.SelectDateTime(req.Date, req.Time, now); err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Fecha u hora inválida.")
			return
		}
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	h.save(c, w)
}

func (h *BookingHandler) SetContact(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w.SetContact(req.ClientName, req.ClientPhone)
	h.save(c, w)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Advance(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	now := timezone.NowIn(h.config.Timezone)
	err := w.Advance(c.Request.Context(), h.repo, now)

	if err != nil {
		var fe *booking.FieldErrors
		switch {
		case errors.As(err, &fe):
			// Ambos errores de campo pueden salir a la vez; el
			// asistente sigue en el paso de contacto.
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "invalid_input",
				"fields": fe,
			})
		case httperr.IsBusiness(err, "step_incomplete"):
			httperr.BadRequest(c, "step_incomplete", "Completá este paso antes de seguir.")
		case httperr.IsBusiness(err, "wizard_finished"):
			httperr.Conflict(c, "wizard_finished", "La reserva ya fue confirmada.")
		case httperr.IsBusiness(err, "precondition_failed"):
			httperr.BadRequest(c, "precondition_failed", "Faltan datos de la reserva.")
		default:
			// Falla de la capa de datos: sin reintento automático.
			httperr.Internal(c, "booking_failed", "Error al reservar. Intentá de nuevo.")
		}
		return
	}

	if w.Step == booking.StepConfirmation {
		h.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: w.AppointmentID,
		})
	}

	h.save(c, w)
}

func (h *BookingHandler) Retreat(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	w.Retreat()
	h.save(c, w)
}

// ======================================================
// CONFIRMATION
// ======================================================

func (h *BookingHandler) Confirmation(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	if w.Step != booking.StepConfirmation {
		httperr.Conflict(c, "wizard_not_finished", "La reserva todavía no fue confirmada.")
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), *w.BarberID)
	if err != nil {
		httperr.Internal(c, "confirmation_failed", "Error al armar la confirmación.")
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), *w.ServiceID)
	if err != nil {
		httperr.Internal(c, "confirmation_failed", "Error al armar la confirmación.")
		return
	}

	conf, err := booking.BuildConfirmation(
		w, barber, svc,
		h.config.ShopName,
		h.config.ShopWhatsApp,
		h.config.Timezone,
	)
	if err != nil {
		httperr.Internal(c, "confirmation_failed", "Error al armar la confirmación.")
		return
	}

	c.JSON(http.StatusOK, conf)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) load(c *gin.Context) (*booking.Wizard, bool) {
	id := c.Param("id")

	w, err := h.store.Get(c.Request.Context(), id)
	if err == session.ErrNotFound {
		httperr.NotFound(c, "booking_not_found", "La sesión de reserva expiró o no existe.")
		return nil, false
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_booking", "Error al cargar la reserva.")
		return nil, false
	}
	return w, true
}

func (h *BookingHandler) save(c *gin.Context, w *booking.Wizard) {
	if err := h.store.Save(c.Request.Context(), w); err != nil {
		httperr.Internal(c, "failed_to_save_booking", "Error al guardar la reserva.")
		return
	}
	c.JSON(http.StatusOK, h.view(w))
}

func (h *BookingHandler) view(w *booking.Wizard) gin.H {
	now := timezone.NowIn(h.config.Timezone)
	return gin.H{
		"id":           w.ID,
		"step":         int(w.Step),
		"step_name":    w.Step.String(),
		"barber_id":    w.BarberID,
		"service_id":   w.ServiceID,
		"date":         w.Date,
		"time":         w.Time,
		"client_name":  w.ClientName,
		"client_phone": w.ClientPhone,
		"can_advance":  w.CanAdvance(now),
	}
}
