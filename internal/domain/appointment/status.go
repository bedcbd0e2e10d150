package appointment

import "github.com/vortexia/barbershop-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsKnown(s Status) bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel define se uma cita pode ser cancelada
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se uma cita pode ser concluída; a transição só
// existe a partir de scheduled, então repetir a conclusão nunca gera
// uma segunda transação de ingresso
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o único status com que uma cita nasce
func InitialStatus() Status {
	return StatusScheduled
}
