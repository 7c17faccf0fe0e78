package booking

import (
	"context"

	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

// Repository es la fachada de datos que necesita el asistente de
// reserva. Se inyecta para poder sustituirla por un fake en tests.
type Repository interface {
	// GetActiveBarber falla si el barbero no existe o está inactivo.
	GetActiveBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
