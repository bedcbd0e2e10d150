package appointment

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	Date    *string
	Time    *string
	Service *string
	Price   *decimal.Decimal
	Notes   *string

	// Valores de status passam pela máquina de transições; um payload
	// repetindo "completed" numa cita já concluída é invalid_state em
	// vez de disparar a regra de novo
	Status *string
}

func (in UpdateAppointmentInput) hasFieldChanges() bool {
	return in.Date != nil || in.Time != nil || in.Service != nil ||
		in.Price != nil || in.Notes != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo     domain.Repository
	complete *CompleteAppointment
	cancel   *CancelAppointment
	mu       *sync.RWMutex
}

func NewUpdateAppointment(
	repo domain.Repository,
	complete *CompleteAppointment,
	cancel *CancelAppointment,
	mu *sync.RWMutex,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		complete: complete,
		cancel:   cancel,
		mu:       mu,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if in.hasFieldChanges() {
		if err := uc.applyFields(ctx, appointmentID, in); err != nil {
			return nil, err
		}
	}

	if in.Status != nil {
		switch domain.Status(*in.Status) {
		case domain.StatusCompleted:
			return uc.complete.Execute(ctx, appointmentID)
		case domain.StatusCancelled:
			return uc.cancel.Execute(ctx, appointmentID)
		case domain.StatusScheduled:
			// só é um no-op quando nada mudou de fato
			ap, err := uc.getLocked(ctx, appointmentID)
			if err != nil {
				return nil, err
			}
			if domain.Status(ap.Status) != domain.StatusScheduled {
				return nil, httperr.ErrBusiness("invalid_state")
			}
			return ap, nil
		default:
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	return uc.getLocked(ctx, appointmentID)
}

func (uc *UpdateAppointment) applyFields(
	ctx context.Context,
	appointmentID string,
	in UpdateAppointmentInput,
) error {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.Service != nil {
		ap.Service = *in.Service
	}
	if in.Price != nil {
		ap.Price = *in.Price
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	return uc.repo.SaveAppointment(ctx, ap)
}

func (uc *UpdateAppointment) getLocked(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.repo.GetAppointment(ctx, appointmentID)
}
