package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/httpresp"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

type PublicHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewPublicHandler(db *gorm.DB, cfg *config.Config) *PublicHandler {
	return &PublicHandler{db: db, config: cfg}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

// ListBarbers solo devuelve activos: un barbero dado de baja no se
// ofrece para turnos nuevos.
func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	httpresp.List(c, barbers)
}

// Landing junta todo lo que muestra la página de inicio.
func (h *PublicHandler) Landing(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_landing", "Error al cargar la página.")
		return
	}

	var team []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&team).Error; err != nil {
		httperr.Internal(c, "failed_to_load_landing", "Error al cargar la página.")
		return
	}

	httpresp.OK(c, gin.H{
		"shop": gin.H{
			"name":    h.config.ShopName,
			"phone":   h.config.ShopPhone,
			"address": h.config.ShopAddress,
		},
		"services": services,
		"team":     team,
	})
}
