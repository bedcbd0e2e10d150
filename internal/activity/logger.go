package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/storage"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// MaxEntries é o teto do histórico; o mais antigo é descartado em silêncio
const MaxEntries = 50

type Logger struct {
	store storage.Store

	ids func() string
}

func New(store storage.Store) *Logger {
	return &Logger{
		store: store,
		ids:   uuid.NewString,
	}
}

// Record cria a entrada carimbada com o instante atual, insere no topo e
// trunca o histórico às MaxEntries mais recentes. A ordem é estritamente
// reverso-cronológica por inserção.
func (l *Logger) Record(ctx context.Context, kind, action, description, section string) error {
	var entries []models.Activity
	if _, err := l.store.Load(ctx, storage.KeyActivities, &entries); err != nil {
		return err
	}

	entry := models.Activity{
		ID:          l.ids(),
		Type:        kind,
		Action:      action,
		Description: description,
		Date:        timezone.Now(),
		Section:     section,
	}

	entries = append([]models.Activity{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	return l.store.Save(ctx, storage.KeyActivities, entries)
}

func (l *Logger) List(ctx context.Context) ([]models.Activity, error) {
	var entries []models.Activity
	found, err := l.store.Load(ctx, storage.KeyActivities, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Activity{}, nil
	}
	return entries, nil
}
