package appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/activity"
	domain "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID   string
	ClientName string

	Date string
	Time string

	Service string
	Price   decimal.Decimal
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewCreateAppointment(
	repo domain.Repository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// --------------------------------------------------
	// Data / hora
	// --------------------------------------------------
	day, err := time.ParseInLocation(timezone.DateLayout, in.Date, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	slot, err := time.Parse(timezone.TimeLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Horário de funcionamento
	// --------------------------------------------------
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !withinWorkingHours(settings.WorkingHours.ForWeekday(day.Weekday()), slot) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// Nome denormalizado do cliente (cópia da criação)
	// --------------------------------------------------
	clientName := in.ClientName
	if in.ClientID != "" {
		if client, err := uc.repo.GetClient(ctx, in.ClientID); err == nil {
			clientName = client.Name
		}
	}
	if clientName == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	// --------------------------------------------------
	// Criação (status centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:   in.ClientID,
		ClientName: clientName,
		Date:       in.Date,
		Time:       in.Time,
		Service:    in.Service,
		Price:      in.Price,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Type:        models.ActivityAppointment,
		Action:      "created",
		Description: fmt.Sprintf("Appointment for %s - %s", ap.ClientName, ap.Service),
		Section:     "Schedule",
	})

	return ap, nil
}

func withinWorkingHours(schedule models.DaySchedule, slot time.Time) bool {
	if schedule.Closed {
		return false
	}
	if schedule.Start == "" || schedule.End == "" {
		return true
	}

	open, err := time.Parse(timezone.TimeLayout, schedule.Start)
	if err != nil {
		return true
	}
	closing, err := time.Parse(timezone.TimeLayout, schedule.End)
	if err != nil {
		return true
	}

	return !slot.Before(open) && !slot.After(closing)
}
