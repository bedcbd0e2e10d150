package models

import "github.com/shopspring/decimal"

// Cliente do negócio; TotalPaid acumula os serviços concluídos
type Client struct {
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	TotalPaid decimal.Decimal `json:"total_paid"`
	LastVisit string          `json:"last_visit,omitempty"`

	CreatedAt string `json:"created_at"`
}
