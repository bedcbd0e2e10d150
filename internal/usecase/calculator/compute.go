package calculator

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/domain/pricing"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/models"
)

// Repository é o recorte do storage que o calculador precisa
type Repository interface {
	ListCalculations(ctx context.Context) ([]models.Calculation, error)
	CreateCalculation(ctx context.Context, calc *models.Calculation) error
	CreateClient(ctx context.Context, client *models.Client) error
}

// ======================================================
// INPUT
// ======================================================

type ComputeInput struct {
	Client string

	Width           decimal.Decimal
	Height          decimal.Decimal
	PricePerSqm     decimal.Decimal
	AdditionalLabor decimal.Decimal
	MarginPercent   decimal.Decimal

	DeliveryDate string
}

// ======================================================
// USE CASE
// ======================================================

type Compute struct {
	repo     Repository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewCompute(
	repo Repository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *Compute {
	return &Compute{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// Execute roda o motor de preços e, em caso de sucesso, anexa sempre o
// resultado ao histórico de cálculos. Entrada incompleta devolve
// calculation_incomplete, sem resultado parcial gravado.
func (uc *Compute) Execute(
	ctx context.Context,
	in ComputeInput,
) (*models.Calculation, error) {

	result, ok := pricing.Compute(pricing.Input{
		Width:           in.Width,
		Height:          in.Height,
		PricePerSqm:     in.PricePerSqm,
		AdditionalLabor: in.AdditionalLabor,
		MarginPercent:   in.MarginPercent,
	})
	if !ok {
		return nil, httperr.ErrBusiness("calculation_incomplete")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.ListCalculations(ctx)
	if err != nil {
		return nil, err
	}

	calc := &models.Calculation{
		Name:            fmt.Sprintf("Calculation %d", len(existing)+1),
		Client:          in.Client,
		Width:           in.Width,
		Height:          in.Height,
		PricePerSqm:     in.PricePerSqm,
		AdditionalLabor: in.AdditionalLabor,
		MarginPercent:   in.MarginPercent,
		DeliveryDate:    in.DeliveryDate,
		Result:          result,
	}

	if err := uc.repo.CreateCalculation(ctx, calc); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Type:        models.ActivityCalculation,
		Action:      "computed",
		Description: fmt.Sprintf("Quote for %s - $%s", in.Client, result.SaleCost.String()),
		Section:     "Calculator",
	})

	return calc, nil
}
