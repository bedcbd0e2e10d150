package appointment

import (
	"context"
	"sync"

	"github.com/vortexia/barbershop-manager/internal/activity"
	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewCancelAppointment(
	repo domain.Repository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// Cancelar não compensa nada: nenhuma transação é revertida e o total
// do cliente fica como está.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Type:        models.ActivityAppointment,
		Action:      "cancelled",
		Description: ap.Service + " for " + ap.ClientName + " cancelled",
		Section:     "Schedule",
	})

	return ap, nil
}
