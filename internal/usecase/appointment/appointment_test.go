package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vortexia/barbershop-manager/internal/activity"
	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/storage"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// Datas fixas no futuro, dentro (e fora) do horário default
const (
	mondayDate = "2027-03-01"
	sundayDate = "2027-03-07"
)

type fixture struct {
	repo     *repository.StoreRepository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemoryStore()
	return &fixture{
		repo:     repository.NewStoreRepository(store),
		activity: activity.NewDispatcher(activity.New(store)),
		mu:       &sync.RWMutex{},
	}
}

func (f *fixture) seedClient(t *testing.T, name string, totalPaid string) *models.Client {
	t.Helper()

	client := &models.Client{
		Name:      name,
		TotalPaid: decimal.RequireFromString(totalPaid),
	}
	require.NoError(t, f.repo.CreateClient(context.Background(), client))
	return client
}

func (f *fixture) seedAppointment(t *testing.T, clientID, clientName, price string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		ClientID:   clientID,
		ClientName: clientName,
		Date:       mondayDate,
		Time:       "10:00",
		Service:    "Haircut",
		Price:      decimal.RequireFromString(price),
		Status:     string(domain.StatusScheduled),
	}
	require.NoError(t, f.repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestCompleteAppointment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("records income and updates client in one step", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		client := f.seedClient(t, "John Doe", "100")
		ap := f.seedAppointment(t, client.ID, client.Name, "500")

		uc := NewCompleteAppointment(f.repo, f.activity, f.mu)
		done, err := uc.Execute(ctx, ap.ID)
		require.NoError(t, err)

		require.Equal(t, string(domain.StatusCompleted), done.Status)
		require.NotNil(t, done.CompletedAt)

		transactions, err := f.repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		require.Equal(t, models.TransactionIncome, transactions[0].Type)
		require.Equal(t, models.CategoryService, transactions[0].Category)
		require.Equal(t, "Haircut - John Doe", transactions[0].Description)
		require.True(t, decimal.RequireFromString("500").Equal(transactions[0].Amount))
		require.Equal(t, timezone.DateStamp(timezone.Now()), transactions[0].Date)

		updated, err := f.repo.GetClient(ctx, client.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("600").Equal(updated.TotalPaid))
		require.Equal(t, timezone.DateStamp(timezone.Now()), updated.LastVisit)
	})

	t.Run("tolerates a missing client", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ap := f.seedAppointment(t, "ghost", "Walk In", "300")

		uc := NewCompleteAppointment(f.repo, f.activity, f.mu)
		_, err := uc.Execute(ctx, ap.ID)
		require.NoError(t, err)

		transactions, err := f.repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
	})

	t.Run("rejects double completion", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		client := f.seedClient(t, "John Doe", "0")
		ap := f.seedAppointment(t, client.ID, client.Name, "500")

		uc := NewCompleteAppointment(f.repo, f.activity, f.mu)
		_, err := uc.Execute(ctx, ap.ID)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, ap.ID)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))

		// Nenhum efeito duplicado
		transactions, err := f.repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)

		updated, err := f.repo.GetClient(ctx, client.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("500").Equal(updated.TotalPaid))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		uc := NewCompleteAppointment(f.repo, f.activity, f.mu)
		_, err := uc.Execute(ctx, "nope")
		require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cancels without compensation", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		client := f.seedClient(t, "John Doe", "100")
		ap := f.seedAppointment(t, client.ID, client.Name, "500")

		uc := NewCancelAppointment(f.repo, f.activity, f.mu)
		cancelled, err := uc.Execute(ctx, ap.ID)
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusCancelled), cancelled.Status)
		require.NotNil(t, cancelled.CancelledAt)

		transactions, err := f.repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Empty(t, transactions)

		updated, err := f.repo.GetClient(ctx, client.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("100").Equal(updated.TotalPaid))
	})

	t.Run("cannot cancel a completed appointment", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ap := f.seedAppointment(t, "", "Walk In", "300")

		_, err := NewCompleteAppointment(f.repo, f.activity, f.mu).Execute(ctx, ap.ID)
		require.NoError(t, err)

		_, err = NewCancelAppointment(f.repo, f.activity, f.mu).Execute(ctx, ap.ID)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestCreateAppointment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := CreateAppointmentInput{
		Date:    mondayDate,
		Time:    "10:00",
		Service: "Haircut",
		Price:   decimal.RequireFromString("500"),
	}

	t.Run("starts scheduled and copies the client name", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		client := f.seedClient(t, "John Doe", "0")

		in := base
		in.ClientID = client.ID
		in.ClientName = "stale name"

		uc := NewCreateAppointment(f.repo, f.activity, f.mu)
		ap, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		require.NotEmpty(t, ap.ID)
		require.Equal(t, string(domain.StatusScheduled), ap.Status)
		require.Equal(t, "John Doe", ap.ClientName)
	})

	t.Run("walk-in keeps the free-form name", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		in := base
		in.ClientName = "Walk In"

		ap, err := NewCreateAppointment(f.repo, f.activity, f.mu).Execute(ctx, in)
		require.NoError(t, err)
		require.Equal(t, "Walk In", ap.ClientName)
		require.Empty(t, ap.ClientID)
	})

	t.Run("requires some client name", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := NewCreateAppointment(f.repo, f.activity, f.mu).Execute(ctx, base)
		require.True(t, httperr.IsBusiness(err, "client_name_required"))
	})

	t.Run("rejects a closed day", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		in := base
		in.ClientName = "Walk In"
		in.Date = sundayDate

		_, err := NewCreateAppointment(f.repo, f.activity, f.mu).Execute(ctx, in)
		require.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	})

	t.Run("rejects a slot after closing time", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		in := base
		in.ClientName = "Walk In"
		in.Time = "23:00"

		_, err := NewCreateAppointment(f.repo, f.activity, f.mu).Execute(ctx, in)
		require.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		in := base
		in.ClientName = "Walk In"
		in.Date = "01/03/2027"

		_, err := NewCreateAppointment(f.repo, f.activity, f.mu).Execute(ctx, in)
		require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})
}

func TestUpdateAppointment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newUpdate := func(f *fixture) *UpdateAppointment {
		complete := NewCompleteAppointment(f.repo, f.activity, f.mu)
		cancel := NewCancelAppointment(f.repo, f.activity, f.mu)
		return NewUpdateAppointment(f.repo, complete, cancel, f.mu)
	}

	t.Run("patches only the provided fields", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ap := f.seedAppointment(t, "", "Walk In", "500")

		notes := "bring reference photo"
		updated, err := newUpdate(f).Execute(ctx, ap.ID, UpdateAppointmentInput{Notes: &notes})
		require.NoError(t, err)

		require.Equal(t, notes, updated.Notes)
		require.Equal(t, "Haircut", updated.Service)
		require.Equal(t, string(domain.StatusScheduled), updated.Status)
	})

	t.Run("status completed runs the completion rule once", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		client := f.seedClient(t, "John Doe", "0")
		ap := f.seedAppointment(t, client.ID, client.Name, "500")

		status := string(domain.StatusCompleted)
		uc := newUpdate(f)

		updated, err := uc.Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &status})
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusCompleted), updated.Status)

		_, err = uc.Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &status})
		require.True(t, httperr.IsBusiness(err, "invalid_state"))

		transactions, err := f.repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
	})

	t.Run("cannot move a completed appointment back to scheduled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ap := f.seedAppointment(t, "", "Walk In", "500")

		completed := string(domain.StatusCompleted)
		scheduled := string(domain.StatusScheduled)
		uc := newUpdate(f)

		_, err := uc.Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &completed})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &scheduled})
		require.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ap := f.seedAppointment(t, "", "Walk In", "500")

		status := "snoozed"
		_, err := newUpdate(f).Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &status})
		require.True(t, httperr.IsBusiness(err, "invalid_status"))
	})
}
