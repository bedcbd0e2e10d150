package models

import "github.com/shopspring/decimal"

// Valores exatos, sem arredondamento; formatação só na exibição
type CalculationResult struct {
	Area            decimal.Decimal `json:"area"`
	MaterialsCost   decimal.Decimal `json:"materials_cost"`
	AdditionalLabor decimal.Decimal `json:"additional_labor"`
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`
	Margin          decimal.Decimal `json:"margin"`
	SaleCost        decimal.Decimal `json:"sale_cost"`
}

type Calculation struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Client string `json:"client"`

	Width           decimal.Decimal `json:"width"`
	Height          decimal.Decimal `json:"height"`
	PricePerSqm     decimal.Decimal `json:"price_per_sqm"`
	AdditionalLabor decimal.Decimal `json:"additional_labor"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`

	DeliveryDate string `json:"delivery_date,omitempty"`

	Result CalculationResult `json:"result"`

	CreatedAt string `json:"created_at"`
}
