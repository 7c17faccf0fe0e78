package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/audit"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/middleware"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

type AdminServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AdminServiceHandler {
	return &AdminServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

// Precio y duración se editan juntos, una sola operación de update
// por par.
type UpdateServiceRequest struct {
	Price       *float64 `json:"price" binding:"required"`
	DurationMin *int     `json:"duration_min" binding:"required"`
}

// --------- Handlers ---------

func (h *AdminServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *AdminServiceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Error al buscar el servicio.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "El precio no puede ser negativo.")
		return
	}
	if *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "La duración debe ser positiva.")
		return
	}

	service.Price = *req.Price
	service.DurationMin = *req.DurationMin

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar el servicio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
		Metadata: map[string]any{
			"price":        service.Price,
			"duration_min": service.DurationMin,
		},
	})

	c.JSON(http.StatusOK, service)
}
