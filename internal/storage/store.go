package storage

import "context"

// Uma chave fixa por coleção, valores JSON opacos
const (
	KeyClients      = "barbershop_clients"
	KeyTransactions = "barbershop_transactions"
	KeyAppointments = "barbershop_appointments"
	KeyInventory    = "barbershop_inventory"
	KeySettings     = "barbershop_settings"
	KeyActivities   = "barbershop_activities"
	KeyCalculations = "barbershop_calculations"
)

// Store guarda valores JSON sob chaves fixas, last-write-wins.
// Load devolve found=false quando a chave nunca foi gravada; o chamador
// aplica o valor default. Falhas de serialização ou do backend propagam
// sem retry nem wrapping.
type Store interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	Save(ctx context.Context, key string, value any) error
}
