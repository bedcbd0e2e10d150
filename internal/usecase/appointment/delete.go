package appointment

import (
	"context"
	"sync"

	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo domain.Repository
	mu   *sync.RWMutex
}

func NewDeleteAppointment(
	repo domain.Repository,
	mu *sync.RWMutex,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo: repo,
		mu:   mu,
	}
}

// Remoção é permanente; nada é arquivado
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) error {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.repo.DeleteAppointment(ctx, appointmentID)
}
