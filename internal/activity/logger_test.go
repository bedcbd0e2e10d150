package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/storage"
)

func TestLoggerRecord(t *testing.T) {
	t.Parallel()

	t.Run("newest entry comes first", func(t *testing.T) {
		t.Parallel()
		logger := New(storage.NewMemoryStore())
		ctx := context.Background()

		require.NoError(t, logger.Record(ctx, models.ActivityClient, "created", "first", "Clients"))
		require.NoError(t, logger.Record(ctx, models.ActivityAppointment, "created", "second", "Schedule"))

		entries, err := logger.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "second", entries[0].Description)
		require.Equal(t, "first", entries[1].Description)
		require.NotEmpty(t, entries[0].ID)
		require.False(t, entries[0].Date.IsZero())
	})

	t.Run("history is capped at MaxEntries", func(t *testing.T) {
		t.Parallel()
		logger := New(storage.NewMemoryStore())
		ctx := context.Background()

		for i := 1; i <= MaxEntries+10; i++ {
			desc := fmt.Sprintf("entry %d", i)
			require.NoError(t, logger.Record(ctx, models.ActivityClient, "created", desc, "Clients"))
		}

		entries, err := logger.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, MaxEntries)
		require.Equal(t, fmt.Sprintf("entry %d", MaxEntries+10), entries[0].Description)
		require.Equal(t, "entry 11", entries[len(entries)-1].Description)
	})

	t.Run("empty history lists as empty slice", func(t *testing.T) {
		t.Parallel()
		logger := New(storage.NewMemoryStore())

		entries, err := logger.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, entries)
		require.Empty(t, entries)
	})
}
