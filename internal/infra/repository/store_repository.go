package repository

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/storage"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// StoreRepository guarda cada coleção como um blob JSON sob a sua chave.
// Toda mutação recarrega a coleção, transforma e grava por substituição
// completa. A serialização entre mutações é responsabilidade do chamador
// (um lock global no wiring das rotas).
type StoreRepository struct {
	store storage.Store

	ids func() string
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{
		store: store,
		ids:   uuid.NewString,
	}
}

func loadSlice[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	var items []T
	found, err := store.Load(ctx, key, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}
	return items, nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *StoreRepository) GetSettings(ctx context.Context) (models.BusinessSettings, error) {
	var settings models.BusinessSettings
	found, err := r.store.Load(ctx, storage.KeySettings, &settings)
	if err != nil {
		return models.BusinessSettings{}, err
	}
	if !found {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (r *StoreRepository) SaveSettings(ctx context.Context, settings models.BusinessSettings) error {
	return r.store.Save(ctx, storage.KeySettings, settings)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *StoreRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return loadSlice[models.Client](ctx, r.store, storage.KeyClients)
}

func (r *StoreRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (r *StoreRepository) CreateClient(ctx context.Context, client *models.Client) error {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return err
	}

	client.ID = r.ids()
	if client.CreatedAt == "" {
		client.CreatedAt = timezone.DateStamp(timezone.Now())
	}

	clients = append(clients, *client)
	return r.store.Save(ctx, storage.KeyClients, clients)
}

func (r *StoreRepository) SaveClient(ctx context.Context, client *models.Client) error {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return err
	}

	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = *client
			return r.store.Save(ctx, storage.KeyClients, clients)
		}
	}
	return httperr.ErrBusiness("client_not_found")
}

func (r *StoreRepository) DeleteClient(ctx context.Context, id string) error {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return err
	}

	kept := clients[:0]
	for _, client := range clients {
		if client.ID != id {
			kept = append(kept, client)
		}
	}
	return r.store.Save(ctx, storage.KeyClients, kept)
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *StoreRepository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return loadSlice[models.Transaction](ctx, r.store, storage.KeyTransactions)
}

func (r *StoreRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	transactions, err := r.ListTransactions(ctx)
	if err != nil {
		return err
	}

	tx.ID = r.ids()
	if tx.Date == "" {
		tx.Date = timezone.DateStamp(timezone.Now())
	}

	transactions = append(transactions, *tx)
	return r.store.Save(ctx, storage.KeyTransactions, transactions)
}

func (r *StoreRepository) DeleteTransaction(ctx context.Context, id string) error {
	transactions, err := r.ListTransactions(ctx)
	if err != nil {
		return err
	}

	kept := transactions[:0]
	for _, tx := range transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return r.store.Save(ctx, storage.KeyTransactions, kept)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *StoreRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return loadSlice[models.Appointment](ctx, r.store, storage.KeyAppointments)
}

func (r *StoreRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appointments, err := r.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *StoreRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	appointments, err := r.ListAppointments(ctx)
	if err != nil {
		return err
	}

	ap.ID = r.ids()
	if ap.CreatedAt == "" {
		ap.CreatedAt = timezone.DateStamp(timezone.Now())
	}

	appointments = append(appointments, *ap)
	return r.store.Save(ctx, storage.KeyAppointments, appointments)
}

func (r *StoreRepository) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	appointments, err := r.ListAppointments(ctx)
	if err != nil {
		return err
	}

	for i := range appointments {
		if appointments[i].ID == ap.ID {
			appointments[i] = *ap
			return r.store.Save(ctx, storage.KeyAppointments, appointments)
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *StoreRepository) DeleteAppointment(ctx context.Context, id string) error {
	appointments, err := r.ListAppointments(ctx)
	if err != nil {
		return err
	}

	kept := appointments[:0]
	for _, ap := range appointments {
		if ap.ID != id {
			kept = append(kept, ap)
		}
	}
	return r.store.Save(ctx, storage.KeyAppointments, kept)
}

// --------------------------------------------------
// Inventory
// --------------------------------------------------

func (r *StoreRepository) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return loadSlice[models.InventoryItem](ctx, r.store, storage.KeyInventory)
}

func (r *StoreRepository) GetInventoryItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	items, err := r.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, httperr.ErrBusiness("item_not_found")
}

func (r *StoreRepository) CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	items, err := r.ListInventory(ctx)
	if err != nil {
		return err
	}

	item.ID = r.ids()
	if item.CreatedAt == "" {
		item.CreatedAt = timezone.DateStamp(timezone.Now())
	}

	items = append(items, *item)
	return r.store.Save(ctx, storage.KeyInventory, items)
}

func (r *StoreRepository) SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	items, err := r.ListInventory(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.store.Save(ctx, storage.KeyInventory, items)
		}
	}
	return httperr.ErrBusiness("item_not_found")
}

func (r *StoreRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	items, err := r.ListInventory(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return r.store.Save(ctx, storage.KeyInventory, kept)
}

// --------------------------------------------------
// Calculation
// --------------------------------------------------

func (r *StoreRepository) ListCalculations(ctx context.Context) ([]models.Calculation, error) {
	return loadSlice[models.Calculation](ctx, r.store, storage.KeyCalculations)
}

func (r *StoreRepository) GetCalculation(ctx context.Context, id string) (*models.Calculation, error) {
	calculations, err := r.ListCalculations(ctx)
	if err != nil {
		return nil, err
	}

	for i := range calculations {
		if calculations[i].ID == id {
			return &calculations[i], nil
		}
	}
	return nil, httperr.ErrBusiness("calculation_not_found")
}

// CreateCalculation anexa ao histórico; o histórico não tem limite
func (r *StoreRepository) CreateCalculation(ctx context.Context, calc *models.Calculation) error {
	calculations, err := r.ListCalculations(ctx)
	if err != nil {
		return err
	}

	calc.ID = r.ids()
	if calc.CreatedAt == "" {
		calc.CreatedAt = timezone.Now().Format(timezone.DateLayout)
	}

	calculations = append(calculations, *calc)
	return r.store.Save(ctx, storage.KeyCalculations, calculations)
}

func (r *StoreRepository) SaveCalculation(ctx context.Context, calc *models.Calculation) error {
	calculations, err := r.ListCalculations(ctx)
	if err != nil {
		return err
	}

	for i := range calculations {
		if calculations[i].ID == calc.ID {
			calculations[i] = *calc
			return r.store.Save(ctx, storage.KeyCalculations, calculations)
		}
	}
	return httperr.ErrBusiness("calculation_not_found")
}

func (r *StoreRepository) DeleteCalculation(ctx context.Context, id string) error {
	calculations, err := r.ListCalculations(ctx)
	if err != nil {
		return err
	}

	kept := calculations[:0]
	for _, calc := range calculations {
		if calc.ID != id {
			kept = append(kept, calc)
		}
	}
	return r.store.Save(ctx, storage.KeyCalculations, kept)
}

// Compile-time check
var _ domain.Repository = (*StoreRepository)(nil)
