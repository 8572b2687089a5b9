package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/notifier"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/usecases/monitoring"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/utils"
)

// CpqMonitorService gerencia o agendamento e a execução do monitoramento de
// CPQ. Em modo RUN_ONCE o agendador não é usado e RunOnce é chamado direto
// pelo main; em modo agendado o job roda no cron configurado.
type CpqMonitorService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config

	spendFetcher   meta.Integrator
	reportExporter pipefy.Integrator
	monitor        monitoring.Monitor
	notifier       notifier.Notifier

	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewCpqMonitorService(
	spendFetcher meta.Integrator,
	reportExporter pipefy.Integrator,
	monitor monitoring.Monitor,
	alertNotifier notifier.Notifier,
	cfg *config.Config,
) *CpqMonitorService {
	logrus.WithFields(logrus.Fields{
		"run_once":      cfg.CpqMonitor.RunOnce,
		"cron_schedule": cfg.CpqMonitor.CronSchedule,
		"threshold":     cfg.CpqMonitor.Threshold,
	}).Info("Configuração do monitoramento de CPQ carregada")

	return &CpqMonitorService{
		scheduler:      gocron.NewScheduler(time.Local),
		cfg:            cfg,
		spendFetcher:   spendFetcher,
		reportExporter: reportExporter,
		monitor:        monitor,
		notifier:       alertNotifier,
	}
}

// Start agenda o monitoramento no cron configurado. Não é usado em modo
// RUN_ONCE.
func (s *CpqMonitorService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cfg.CpqMonitor.CronSchedule).Info("Iniciando agendador do monitoramento de CPQ")

	_, err := s.scheduler.Cron(s.cfg.CpqMonitor.CronSchedule).Do(func() {
		s.runGuarded(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o monitoramento de CPQ: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do monitoramento de CPQ")
		s.scheduler.Stop()
	}()

	return nil
}

// runGuarded executa o monitoramento protegido contra sobreposição dentro
// do mesmo processo
func (s *CpqMonitorService) runGuarded(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de CPQ já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if err := s.RunOnce(ctx); err != nil {
		logrus.WithError(err).Error("Execução do monitoramento de CPQ falhou")
	}
}

// RunOnce executa o pipeline completo uma vez: gasto, relatório de
// qualificação, cálculo de CPQ e notificação. O único erro retornado é o
// fatal (falha ao adquirir o id do export); nesse caso nenhuma notificação
// é tentada.
func (s *CpqMonitorService) RunOnce(ctx context.Context) error {
	runID, _ := utils.GenerateID()
	startTime := time.Now()
	s.lastRunStartedAt = startTime

	log := logrus.WithField("run_id", runID)
	log.Info("Iniciando execução do monitoramento de CPQ")

	spend := s.spendFetcher.FetchTodaySpend()
	log.WithField("spend_records", len(spend)).Info("Gasto do dia obtido")

	degraded := false
	qualifications, err := s.reportExporter.ExportQualificationReport()
	if err != nil {
		if !errors.Is(err, pipefy.ErrReportUnavailable) {
			return err
		}

		// Degradação explícita: a execução segue sem dados de qualificação
		// e a notificação carrega o aviso de dados incompletos
		log.WithError(err).Error("Relatório de qualificação indisponível, seguindo com dados incompletos")
		degraded = true
		qualifications = nil
	}

	alert := s.monitor.ComputeCPQ(spend, qualifications, time.Now())
	log.Debug("Alerta calculado: ", utils.PrettyJson(alert))

	s.notifier.Notify(ctx, alert, degraded)

	duration := time.Since(startTime)
	log.WithFields(logrus.Fields{
		"duration":       duration.String(),
		"ads_over":       len(alert.ExceedingAds),
		"campaigns_over": len(alert.ExceedingCampaigns),
		"degraded":       degraded,
	}).Info("Execução do monitoramento de CPQ concluída")

	s.lastRunCompletedAt = time.Now()

	return nil
}

// TriggerManualSync inicia manualmente uma execução do monitoramento
func (s *CpqMonitorService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de CPQ já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do monitoramento de CPQ")
	go s.runGuarded(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CpqMonitorService) GetStatus() map[string]any {
	return map[string]any{
		"run_once":              s.cfg.CpqMonitor.RunOnce,
		"cron_schedule":         s.cfg.CpqMonitor.CronSchedule,
		"cpq_threshold":         s.cfg.CpqMonitor.Threshold,
		"report_max_attempts":   s.cfg.CpqMonitor.MaxReportAttempts,
		"report_poll_interval":  s.cfg.CpqMonitor.PollInterval().String(),
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
