package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/vortexia/barbershop-manager/internal/activity"
	domainAp "github.com/vortexia/barbershop-manager/internal/domain/appointment"
	"github.com/vortexia/barbershop-manager/internal/logger"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// AgendaDigest registra uma atividade diária com o resumo das citas
// agendadas para o dia seguinte. Canal lateral: falhas só geram log,
// nunca derrubam a aplicação.
type AgendaDigest struct {
	repo     domainAp.Repository
	activity *activity.Dispatcher
	spec     string

	cron *cron.Cron
}

func NewAgendaDigest(
	repo domainAp.Repository,
	activity *activity.Dispatcher,
	spec string,
) *AgendaDigest {
	return &AgendaDigest{
		repo:     repo,
		activity: activity,
		spec:     spec,
	}
}

func (s *AgendaDigest) Start() error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(s.spec, s.Run); err != nil {
		return err
	}

	s.cron.Start()
	logger.Log.Info().Str("cron", s.spec).Msg("agenda digest scheduler started")
	return nil
}

func (s *AgendaDigest) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *AgendaDigest) Run() {
	ctx := context.Background()

	appointments, err := s.repo.ListAppointments(ctx)
	if err != nil {
		logger.Log.Error().Err(err).Msg("agenda digest: failed to list appointments")
		return
	}

	tomorrow := timezone.DateStamp(timezone.Now().AddDate(0, 0, 1))

	count := 0
	for _, ap := range appointments {
		if ap.Date == tomorrow && ap.Status == string(domainAp.StatusScheduled) {
			count++
		}
	}

	if count == 0 {
		logger.Log.Debug().Str("date", tomorrow).Msg("agenda digest: nothing scheduled")
		return
	}

	s.activity.Dispatch(activity.Event{
		Type:        models.ActivityAppointment,
		Action:      "digest",
		Description: fmt.Sprintf("%d appointment(s) scheduled for %s", count, tomorrow),
		Section:     "Schedule",
	})

	logger.Log.Info().Int("count", count).Str("date", tomorrow).Msg("agenda digest recorded")
}
