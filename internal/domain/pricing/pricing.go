package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ===============================
// Pricing Engine
// ===============================

type Input struct {
	Width           decimal.Decimal
	Height          decimal.Decimal
	PricePerSqm     decimal.Decimal
	AdditionalLabor decimal.Decimal
	MarginPercent   decimal.Decimal
}

// Complete valida os campos obrigatórios: largura, altura e preço por m²
// precisam ser positivos; mão de obra e margem são opcionais.
func (in Input) Complete() bool {
	return in.Width.IsPositive() &&
		in.Height.IsPositive() &&
		in.PricePerSqm.IsPositive()
}

// Compute aplica a fórmula de orçamento, na ordem exata, sem arredondar:
//
//	area          = width * height
//	materialsCost = area * pricePerSqm
//	purchaseCost  = materialsCost + additionalLabor
//	margin        = purchaseCost * marginPercent / 100
//	saleCost      = purchaseCost + margin
//
// Entrada incompleta devolve ok=false sem resultado parcial.
func Compute(in Input) (models.CalculationResult, bool) {
	if !in.Complete() {
		return models.CalculationResult{}, false
	}

	area := in.Width.Mul(in.Height)
	materialsCost := area.Mul(in.PricePerSqm)
	purchaseCost := materialsCost.Add(in.AdditionalLabor)
	margin := purchaseCost.Mul(in.MarginPercent).Div(hundred)
	saleCost := purchaseCost.Add(margin)

	return models.CalculationResult{
		Area:            area,
		MaterialsCost:   materialsCost,
		AdditionalLabor: in.AdditionalLabor,
		PurchaseCost:    purchaseCost,
		MarginPercent:   in.MarginPercent,
		Margin:          margin,
		SaleCost:        saleCost,
	}, true
}
