package appointment

import "github.com/abruzzobarber/abruzzo-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Grafo de transiciones: pending → confirmed|cancelled,
// confirmed → completed. completed y cancelled son terminales.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func CanTransition(from, to Status) error {
	for _, t := range transitions[from] {
		if t == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// Actions enumera las acciones que el panel ofrece para un estado.
// Las transiciones ilegales no se ofrecen, no solo se rechazan.
func Actions(s Status) []string {
	switch s {
	case StatusPending:
		return []string{"confirm", "cancel"}
	case StatusConfirmed:
		return []string{"complete"}
	default:
		return []string{}
	}
}
