package models

import "time"

const (
	ActivityClient      = "client"
	ActivityTransaction = "transaction"
	ActivityAppointment = "appointment"
	ActivityInventory   = "inventory"
	ActivityCalculation = "calculation"
)

// Entrada do histórico de atividades; nunca é editada depois de criada
type Activity struct {
	ID string `json:"id"`

	Type        string `json:"type"`
	Action      string `json:"action"`
	Description string `json:"description"`

	Date    time.Time `json:"date"`
	Section string    `json:"section"`
}
