package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/usecases/monitoring"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/utils"

	metamocks "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/mocks"
	pipefymocks "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/mocks"
	notifiermocks "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/notifier/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		CpqMonitor: config.CpqMonitor{
			Threshold:    100,
			RunOnce:      true,
			CronSchedule: "0 21 * * *",
		},
	}
}

func todaySpend(spend float64) []domain.SpendRecord {
	today := utils.TruncateToDay(time.Now())
	return []domain.SpendRecord{
		{
			CampaignID:  "C1",
			AdsetID:     "A1",
			AdName:      "Ad1",
			Spend:       spend,
			Date:        today,
			UTMCampaign: "C1-A1-Ad1",
		},
	}
}

func TestRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()

	spendFetcher := metamocks.NewMockIntegrator(ctrl)
	spendFetcher.EXPECT().FetchTodaySpend().Return(todaySpend(150))

	reportExporter := pipefymocks.NewMockIntegrator(ctrl)
	reportExporter.EXPECT().ExportQualificationReport().Return([]domain.QualificationRecord{
		{
			Stage:       domain.StageQualified,
			CreatedAt:   time.Now(),
			UTMSource:   domain.UTMSourceMeta,
			UTMMedium:   "paid",
			UTMCampaign: "C1-A1-Ad1",
		},
	}, nil)

	// 150 de gasto para um lead qualificado: CPQ 150 > 100
	alertNotifier := notifiermocks.NewMockNotifier(ctrl)
	alertNotifier.EXPECT().Notify(gomock.Any(), domain.Alert{
		ExceedingAds:       []string{"C1-A1-Ad1"},
		ExceedingCampaigns: []string{"C1"},
	}, false)

	service := NewCpqMonitorService(spendFetcher, reportExporter, monitoring.NewService(cfg), alertNotifier, cfg)

	err := service.RunOnce(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_ReportUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()

	spendFetcher := metamocks.NewMockIntegrator(ctrl)
	spendFetcher.EXPECT().FetchTodaySpend().Return(todaySpend(150))

	reportExporter := pipefymocks.NewMockIntegrator(ctrl)
	reportExporter.EXPECT().ExportQualificationReport().Return(nil, pipefy.ErrReportUnavailable)

	// Sem relatório a execução segue degradada: nenhum anúncio alerta
	// (contagem ausente) e a notificação sai marcada como incompleta
	alertNotifier := notifiermocks.NewMockNotifier(ctrl)
	alertNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), true)

	service := NewCpqMonitorService(spendFetcher, reportExporter, monitoring.NewService(cfg), alertNotifier, cfg)

	err := service.RunOnce(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_FatalExportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()

	spendFetcher := metamocks.NewMockIntegrator(ctrl)
	spendFetcher.EXPECT().FetchTodaySpend().Return(todaySpend(150))

	reportExporter := pipefymocks.NewMockIntegrator(ctrl)
	reportExporter.EXPECT().ExportQualificationReport().Return(nil, assert.AnError)

	// Falha fatal: o erro sobe e nenhuma notificação é tentada
	alertNotifier := notifiermocks.NewMockNotifier(ctrl)

	service := NewCpqMonitorService(spendFetcher, reportExporter, monitoring.NewService(cfg), alertNotifier, cfg)

	err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.CpqMonitor.MaxReportAttempts = 30
	cfg.CpqMonitor.PollIntervalSeconds = 10

	service := NewCpqMonitorService(
		metamocks.NewMockIntegrator(ctrl),
		pipefymocks.NewMockIntegrator(ctrl),
		monitoring.NewService(cfg),
		notifiermocks.NewMockNotifier(ctrl),
		cfg,
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["run_once"])
	assert.Equal(t, "0 21 * * *", status["cron_schedule"])
	assert.Equal(t, 100.0, status["cpq_threshold"])
	assert.Equal(t, 30, status["report_max_attempts"])
	assert.Equal(t, "10s", status["report_poll_interval"])
	assert.Equal(t, time.Time{}, status["last_run_started_at"])
}
