// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/repository"
	"github.com/mleodato/restaurant-analytics-api/internal/config"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/sirupsen/logrus"
)

type DashboardSyncConfig struct {
	CronSchedule string
	Enabled      bool
	TopProducts  int
}

// DashboardSyncService materializa o resumo do dashboard uma vez por dia,
// para servir o frontend sem recalcular as agregações a cada acesso.
type DashboardSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analytics.Analyzer
	snapshotRepo        repository.DashboardSnapshotRepository
	config              DashboardSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSyncService(
	analyzer analytics.Analyzer,
	snapshotRepo repository.DashboardSnapshotRepository,
	cfg *config.Config,
) *DashboardSyncService {
	syncConfig := DashboardSyncConfig{
		CronSchedule: cfg.DashboardSync.CronSchedule,
		Enabled:      cfg.DashboardSync.Enabled,
		TopProducts:  cfg.DashboardSync.TopProducts,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de snapshot do dashboard carregada")

	return &DashboardSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		analyzer:     analyzer,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *DashboardSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncDashboardSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na materialização do snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncDashboardSnapshot calcula o resumo do dia corrente e o persiste.
// Execuções sobrepostas são descartadas. O mutex protege apenas a checagem e
// a troca do estado; a consulta roda fora dele para o status não bloquear.
func (s *DashboardSyncService) SyncDashboardSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Materialização do snapshot do dashboard já em andamento, execução descartada")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	day := time.Now().Truncate(24 * time.Hour)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	logrus.WithField("day", dayStart.Format(time.DateOnly)).Info("Materializando snapshot do dashboard")

	summary, err := s.analyzer.DashboardSummary(ctx, domain.MetricFilters{
		DateFrom: &dayStart,
	}, s.config.TopProducts)
	if err != nil {
		return fmt.Errorf("erro ao calcular resumo do dashboard: %w", err)
	}

	snapshot := &domain.DashboardSnapshot{
		Day:     dayStart,
		Summary: summary,
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot do dashboard: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"day":           dayStart.Format(time.DateOnly),
		"total_revenue": summary.TotalRevenue,
		"total_orders":  summary.TotalOrders,
	}).Info("Snapshot do dashboard materializado")

	return nil
}

// TriggerManualSync dispara a materialização fora do horário agendado.
func (s *DashboardSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncDashboardSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na materialização manual do snapshot do dashboard")
		}
	}()
}

// GetStatus retorna o estado atual da cron para o endpoint de status.
func (s *DashboardSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
