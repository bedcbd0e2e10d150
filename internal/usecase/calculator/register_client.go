package calculator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

type RegisterClient struct {
	compute  *Compute
	repo     Repository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewRegisterClient(
	compute *Compute,
	repo Repository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *RegisterClient {
	return &RegisterClient{
		compute:  compute,
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// Execute roda o cálculo e registra um cliente potencial com o custo de
// venda como total pago inicial. As duas falhas são distintas: entrada
// incompleta é calculation_incomplete (nada gravado); nome em branco é
// client_name_required, com o cálculo já no histórico.
func (uc *RegisterClient) Execute(
	ctx context.Context,
	in ComputeInput,
) (*models.Calculation, *models.Client, error) {

	calc, err := uc.compute.Execute(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	name := strings.TrimSpace(in.Client)
	if name == "" {
		return nil, nil, httperr.ErrBusiness("client_name_required")
	}

	client := &models.Client{
		Name:      name,
		TotalPaid: calc.Result.SaleCost,
		LastVisit: timezone.DateStamp(timezone.Now()),
	}

	uc.mu.Lock()
	err = uc.repo.CreateClient(ctx, client)
	uc.mu.Unlock()

	if err != nil {
		return nil, nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Type:        models.ActivityClient,
		Action:      "created",
		Description: fmt.Sprintf("Prospective client %s created with quote $%s", name, calc.Result.SaleCost.String()),
		Section:     "Clients",
	})

	return calc, client, nil
}
