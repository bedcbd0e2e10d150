package models

import "github.com/shopspring/decimal"

type InventoryItem struct {
	ID string `json:"id"`

	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`

	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt string `json:"created_at"`
}
