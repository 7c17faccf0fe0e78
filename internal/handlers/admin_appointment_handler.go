package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/middleware"
	"github.com/abruzzobarber/abruzzo-api/internal/timezone"
	ucAppointment "github.com/abruzzobarber/abruzzo-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentHandler struct {
	config     *config.Config
	listUC     *ucAppointment.ListDashboard
	confirmUC  *ucAppointment.ConfirmAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
}

func NewAdminAppointmentHandler(
	cfg *config.Config,
	listUC *ucAppointment.ListDashboard,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		config:     cfg,
		listUC:     listUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

// ======================================================
// LIST (today / upcoming)
// ======================================================

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	today := timezone.Today(h.config.Timezone)

	dash, err := h.listUC.Execute(c.Request.Context(), today)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar turnos.")
		return
	}

	c.JSON(http.StatusOK, dash)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AdminAppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AdminAppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AdminAppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AdminAppointmentHandler) transition(
	c *gin.Context,
	run func(adminID, id uint) (any, error),
) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Turno inválido.")
		return
	}

	ap, err := run(adminID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "El turno no admite esa transición.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar el turno.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
