package appointment

import (
	"context"
	"sort"
	"sync"

	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
	mu   *sync.RWMutex
}

func NewListAppointments(
	repo domain.Repository,
	mu *sync.RWMutex,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		mu:   mu,
	}
}

// Execute lista todas as citas, opcionalmente filtradas pela data
// (YYYY-MM-DD), ordenadas por data e hora
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	uc.mu.RLock()
	appointments, err := uc.repo.ListAppointments(ctx)
	uc.mu.RUnlock()

	if err != nil {
		return nil, err
	}

	if date != "" {
		filtered := appointments[:0]
		for _, ap := range appointments {
			if ap.Date == date {
				filtered = append(filtered, ap)
			}
		}
		appointments = filtered
	}

	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})

	return appointments, nil
}
