package pipefy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	pipefydomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/pipefyclient/mocks"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
)

func testConfig(maxAttempts int) *config.Config {
	return &config.Config{
		CpqMonitor: config.CpqMonitor{
			MaxReportAttempts:   maxAttempts,
			PollIntervalSeconds: 10,
		},
	}
}

// buildReportFile monta uma planilha no formato dos exports do Pipefy
func buildReportFile(t *testing.T, rows [][]string) []byte {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}

var reportHeader = []string{"Fase atual", "Criado em", "utm_source", "utm_medium", "utm_campaign"}

func TestExportQualificationReport_DoneAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().RequestExport().Return("42", nil)
	gomock.InOrder(
		mockClient.EXPECT().GetExport("42").Return(&pipefydomain.ReportExport{State: "processing"}, nil),
		mockClient.EXPECT().GetExport("42").Return(&pipefydomain.ReportExport{State: "processing"}, nil),
		mockClient.EXPECT().GetExport("42").Return(&pipefydomain.ReportExport{
			State:   pipefydomain.StateDone,
			FileURL: "https://files.pipefy.com/report.xlsx",
		}, nil),
	)

	reportData := buildReportFile(t, [][]string{
		reportHeader,
		{"Lead qualificado", "2024-01-01 10:30:00", "facebook", "paid", "C1-A1-Ad1"},
		{"Lead novo", "2024-01-01 11:00:00", "facebook", "paid", "C2-A2-Ad2"},
	})

	service := New(testConfig(30), mockClient)

	var sleeps []time.Duration
	service.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	var downloadedURL string
	service.download = func(url string) ([]byte, error) {
		downloadedURL = url
		return reportData, nil
	}

	records, err := service.ExportQualificationReport()
	require.NoError(t, err)

	// Uma espera de 10s entre cada tentativa não concluída
	assert.Equal(t, []time.Duration{10 * time.Second, 10 * time.Second}, sleeps)
	assert.Equal(t, "https://files.pipefy.com/report.xlsx", downloadedURL)

	require.Len(t, records, 2)
	assert.Equal(t, domain.StageQualified, records[0].Stage)
	assert.Equal(t, "C1-A1-Ad1", records[0].UTMCampaign)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), records[0].CreatedAt)
	assert.Equal(t, "Lead novo", records[1].Stage)
}

func TestExportQualificationReport_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().RequestExport().Return("42", nil)

	// Exatamente MaxReportAttempts consultas, nunca uma a mais
	mockClient.EXPECT().
		GetExport("42").
		Return(&pipefydomain.ReportExport{State: "processing"}, nil).
		Times(5)

	service := New(testConfig(5), mockClient)

	sleepCount := 0
	service.sleep = func(time.Duration) { sleepCount++ }
	service.download = func(string) ([]byte, error) {
		t.Fatal("download não deveria ser chamado sem estado done")
		return nil, nil
	}

	records, err := service.ExportQualificationReport()

	assert.ErrorIs(t, err, ErrReportUnavailable)
	assert.Nil(t, records)
	assert.Equal(t, 5, sleepCount)
}

func TestExportQualificationReport_TransientErrorThenDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().RequestExport().Return("42", nil)
	gomock.InOrder(
		mockClient.EXPECT().GetExport("42").Return(nil, assert.AnError),
		mockClient.EXPECT().GetExport("42").Return(&pipefydomain.ReportExport{
			State:   pipefydomain.StateDone,
			FileURL: "https://files.pipefy.com/report.xlsx",
		}, nil),
	)

	service := New(testConfig(30), mockClient)
	service.sleep = func(time.Duration) {}
	service.download = func(string) ([]byte, error) {
		return buildReportFile(t, [][]string{reportHeader}), nil
	}

	records, err := service.ExportQualificationReport()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExportQualificationReport_FatalOnRequestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().RequestExport().Return("", assert.AnError)

	service := New(testConfig(30), mockClient)
	service.sleep = func(time.Duration) {
		t.Fatal("não deve haver espera quando a aquisição do id falha")
	}

	records, err := service.ExportQualificationReport()

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrReportUnavailable)
	assert.Nil(t, records)
}

func TestParseReport(t *testing.T) {
	data := buildReportFile(t, [][]string{
		reportHeader,
		{"Lead qualificado", "2024-01-01 08:00:00", "facebook", "paid", "C1-A1-Ad1"},
		// Data não interpretável vira data ausente, nunca erro
		{"Lead qualificado", "sem data", "facebook", "paid", "C2-A2-Ad2"},
		// Linha curta: células ausentes viram campos vazios
		{"Lead qualificado"},
	})

	records, err := parseReport(data)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), records[0].CreatedAt)
	assert.True(t, records[1].CreatedAt.IsZero())
	assert.Empty(t, records[2].UTMCampaign)
	assert.False(t, records[2].HasUTM())
}

func TestParseReport_MissingColumn(t *testing.T) {
	data := buildReportFile(t, [][]string{
		{"Fase atual", "Criado em", "utm_source", "utm_medium"},
	})

	_, err := parseReport(data)
	assert.ErrorContains(t, err, "utm_campaign")
}

func TestParseReport_InvalidFile(t *testing.T) {
	_, err := parseReport([]byte("isto não é uma planilha"))
	assert.Error(t, err)
}
