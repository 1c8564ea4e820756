// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
)

type DashboardCleanupConfig struct {
	CronSchedule string
	Enabled      bool
	TTL          time.Duration
}

// DashboardCleanupService remove periodicamente sessões de dashboard
// ociosas. Os dashboards vivem apenas na memória do processo; a limpeza é o
// único mecanismo de descarte além do DELETE explícito.
type DashboardCleanupService struct {
	scheduler          *gocron.Scheduler
	dashboards         dashboarding.DashboardService
	config             DashboardCleanupConfig
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastEvicted        int
}

func NewDashboardCleanupService(
	dashboards dashboarding.DashboardService,
	cfg *config.Config,
) *DashboardCleanupService {
	cleanupConfig := DashboardCleanupConfig{
		CronSchedule: cfg.Dashboard.CleanupCron,
		Enabled:      cfg.Dashboard.CleanupEnabled,
		TTL:          time.Duration(cfg.Dashboard.TTLMinutes) * time.Minute,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"ttl":           cleanupConfig.TTL.String(),
	}).Info("Configuração da limpeza de sessões de dashboard carregada")

	return &DashboardCleanupService{
		scheduler:  scheduler,
		dashboards: dashboards,
		config:     cleanupConfig,
	}
}

func (s *DashboardCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de sessões de dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões de dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunCleanup(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de sessões de dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões de dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões de dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualCleanup dispara a limpeza fora do agendamento
func (s *DashboardCleanupService) TriggerManualCleanup() {
	go func() {
		if err := s.RunCleanup(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de sessões de dashboard")
		}
	}()
}

func (s *DashboardCleanupService) RunCleanup() error {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	if s.cleanupRunning {
		logrus.Warn("Limpeza de sessões de dashboard já está em execução")
		return nil
	}

	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.cleanupRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	before := s.dashboards.Count()
	evicted := s.dashboards.EvictIdle(s.config.TTL)
	s.lastEvicted = evicted

	logrus.WithFields(logrus.Fields{
		"before":  before,
		"evicted": evicted,
	}).Info("Limpeza de sessões de dashboard concluída")

	return nil
}

// Status devolve o estado da última execução para o endpoint de cron
func (s *DashboardCleanupService) Status() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron_schedule":         s.config.CronSchedule,
		"ttl_minutes":           int(s.config.TTL.Minutes()),
		"running":               s.cleanupRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_evicted":          s.lastEvicted,
		"active_dashboards":     s.dashboards.Count(),
	}
}
