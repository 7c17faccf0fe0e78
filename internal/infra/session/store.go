package session

import (
	"context"
	"errors"
	"time"

	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
)

// TTL de la sesión del asistente: una reserva abandonada expira sola.
const WizardTTL = 30 * time.Minute

var ErrNotFound = errors.New("booking session not found")

type Store interface {
	Save(ctx context.Context, w *booking.Wizard) error
	Get(ctx context.Context, id string) (*booking.Wizard, error)
	Delete(ctx context.Context, id string) error
}
