package appointment

import (
	"context"

	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

type Repository interface {
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsFrom devuelve los turnos con fecha >= from
	// (YYYY-MM-DD), con barbero y servicio precargados, ordenados
	// por fecha y hora ascendente.
	ListAppointmentsFrom(
		ctx context.Context,
		from string,
	) ([]models.Appointment, error)
}
