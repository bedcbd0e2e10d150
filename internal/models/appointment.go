package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID string `json:"id"`

	ClientID string `json:"client_id"`

	// Nome copiado do cliente na criação, nunca re-sincronizado
	ClientName string `json:"client_name"`

	Date string `json:"date"` // 2006-01-02
	Time string `json:"time"` // 15:04

	Service string          `json:"service"`
	Price   decimal.Decimal `json:"price"`

	Status string `json:"status"`

	Notes       string     `json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt string `json:"created_at"`
}
