package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/audit"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/images"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/storage"
	"github.com/abruzzobarber/abruzzo-api/internal/middleware"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

type AdminBarberHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader // nil si no hay bucket configurado
	audit    *audit.Dispatcher
}

func NewAdminBarberHandler(db *gorm.DB, uploader *storage.Uploader, dispatcher *audit.Dispatcher) *AdminBarberHandler {
	return &AdminBarberHandler{db: db, uploader: uploader, audit: dispatcher}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

// --------- Handlers ---------

// List devuelve todos los barberos, activos o no: el panel los
// muestra con su estado.
func (h *AdminBarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *AdminBarberHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "name_required", "El nombre es obligatorio.")
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "Barbero"
	}

	barber := models.Barber{
		Name:   name,
		Role:   role,
		Active: true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Error al crear barbero.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusCreated, barber)
}

// Deactivate es la baja lógica: active = false. Nunca se borra la
// fila, los turnos históricos siguen apuntando al barbero.
func (h *AdminBarberHandler) Deactivate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_deactivate_barber", "Error al dar de baja.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_deactivated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusOK, barber)
}

// UploadPhoto recibe una imagen, la normaliza a WebP y la sube al
// bucket; la URL pública queda en el barbero.
func (h *AdminBarberHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_unavailable", "No hay almacenamiento configurado.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Falta el archivo de la foto.")
		return
	}
	defer file.Close()

	data, err := images.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen no se pudo procesar.")
		return
	}

	url, err := h.uploader.Upload(
		c.Request.Context(),
		"barbers",
		uuid.NewString()+".webp",
		"image/webp",
		data,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Error al subir la foto.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Error al guardar la foto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_photo_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusOK, barber)
}
