package appointment

import (
	"context"
	"sync"

	"github.com/vortexia/barbershop-manager/internal/activity"
	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/logger"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

type CompleteAppointment struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewCompleteAppointment(
	repo domain.Repository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// Execute aplica a regra de conclusão como um passo único: a transição
// de status, a transação de ingresso derivada e a atualização dos
// totais do cliente acontecem sob o mesmo lock de escrita, então nenhum
// leitor observa a transação sem o cliente atualizado.
func (uc *CompleteAppointment) Execute(
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
	tx, err := domain.Complete(ap, now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	// Cliente inexistente não é erro: a transação fica, o total não
	client, err := uc.repo.GetClient(ctx, ap.ClientID)
	switch {
	case err == nil:
		client.TotalPaid = client.TotalPaid.Add(ap.Price)
		client.LastVisit = timezone.DateStamp(now)
		if err := uc.repo.SaveClient(ctx, client); err != nil {
			return nil, err
		}
	case httperr.IsBusiness(err, "client_not_found"):
		logger.Log.Debug().
			Str("appointment_id", ap.ID).
			Str("client_id", ap.ClientID).
			Msg("completed appointment without existing client")
	default:
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Type:        models.ActivityAppointment,
		Action:      "completed",
		Description: ap.Service + " for " + ap.ClientName + " completed",
		Section:     "Schedule",
	})

	return ap, nil
}
