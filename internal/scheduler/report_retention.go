package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
)

// ReportRetentionConfig representa a configuração da limpeza de relatórios
type ReportRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// ReportRetentionService remove periodicamente solicitações de relatório
// finalizadas há mais de RetentionDays dias
type ReportRetentionService struct {
	scheduler           *gocron.Scheduler
	config              ReportRetentionConfig
	reportRepo          repository.ReportRequestRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
	now                 func() time.Time
}

func NewReportRetentionService(
	reportRepo repository.ReportRequestRepository,
	appConfig *config.Config,
) *ReportRetentionService {
	retentionConfig := ReportRetentionConfig{
		CronSchedule:  appConfig.ReportRetention.CronSchedule,
		RetentionDays: appConfig.ReportRetention.RetentionDays,
		SyncEnabled:   appConfig.ReportRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"sync_enabled":   retentionConfig.SyncEnabled,
	}).Info("Configuração da limpeza de relatórios carregada")

	return &ReportRetentionService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     retentionConfig,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *ReportRetentionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de relatórios desabilitada por configuração")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		return fmt.Errorf("dias de retenção inválidos: %d", s.config.RetentionDays)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeExpiredReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportRetentionService) purgeExpiredReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	cutoff := s.now().UTC().AddDate(0, 0, -s.config.RetentionDays)

	deleted, err := s.reportRepo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover relatórios antigos")
		return
	}

	s.syncMutex.Lock()
	s.lastDeleted = deleted
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.DateOnly),
	}).Info("Limpeza de relatórios concluída")
}

// TriggerManualSync inicia manualmente uma limpeza
func (s *ReportRetentionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de relatórios")
	go s.purgeExpiredReports(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReportRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_deleted":           s.lastDeleted,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
