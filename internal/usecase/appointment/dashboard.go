package appointment

import (
	"context"

	domain "github.com/abruzzobarber/abruzzo-api/internal/domain/appointment"
	"github.com/abruzzobarber/abruzzo-api/internal/dto"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

// ======================================================
// DASHBOARD LISTING
// ======================================================

type Dashboard struct {
	Today    []dto.AppointmentRow `json:"today"`
	Upcoming []dto.AppointmentRow `json:"upcoming"`
}

type ListDashboard struct {
	repo domain.Repository
}

func NewListDashboard(repo domain.Repository) *ListDashboard {
	return &ListDashboard{repo: repo}
}

// Execute particiona los turnos en "hoy" (fecha exacta, cualquier
// estado) y "próximos" (fecha >= hoy, sin cancelados), ya ordenados
// por fecha y hora. Cada fila lleva las acciones legales de estado.
func (uc *ListDashboard) Execute(
	ctx context.Context,
	today string,
) (*Dashboard, error) {

	aps, err := uc.repo.ListAppointmentsFrom(ctx, today)
	if err != nil {
		return nil, err
	}

	out := &Dashboard{
		Today:    make([]dto.AppointmentRow, 0),
		Upcoming: make([]dto.AppointmentRow, 0),
	}

	for _, ap := range aps {
		row := toRow(ap)

		if ap.Date == today {
			out.Today = append(out.Today, row)
		}
		if ap.Status != string(domain.StatusCancelled) {
			out.Upcoming = append(out.Upcoming, row)
		}
	}

	return out, nil
}

func toRow(ap models.Appointment) dto.AppointmentRow {
	return dto.AppointmentRow{
		ID:           ap.ID,
		Date:         ap.Date,
		Time:         ap.Time,
		ClientName:   ap.ClientName,
		ClientPhone:  ap.ClientPhone,
		BarberName:   ap.Barber.Name,
		ServiceName:  ap.Service.Name,
		ServicePrice: ap.Service.Price,
		Status:       ap.Status,
		Actions:      domain.Actions(domain.Status(ap.Status)),
	}
}
