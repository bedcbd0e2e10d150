package models

import "github.com/shopspring/decimal"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// CategoryService marca ingresos derivados de citas concluídas
const CategoryService = "service"

// Imutável depois de criada; só pode ser removida
type Transaction struct {
	ID string `json:"id"`

	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`

	Description string `json:"description"`
	Category    string `json:"category"`

	Date string `json:"date"` // 2006-01-02
}
