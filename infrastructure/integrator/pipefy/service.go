package pipefy

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	pipefydomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/utils"
)

// ErrReportUnavailable indica que o export não ficou pronto dentro do limite
// de tentativas. A execução segue sem dados de qualificação, mas o chamador
// deve sinalizar a degradação nos canais de notificação.
var ErrReportUnavailable = errors.New("relatório de qualificação indisponível após todas as tentativas")

// Colunas esperadas no relatório exportado
const (
	columnStage       = "Fase atual"
	columnCreatedAt   = "Criado em"
	columnUTMSource   = "utm_source"
	columnUTMMedium   = "utm_medium"
	columnUTMCampaign = "utm_campaign"
)

// Integrator exporta e baixa o relatório de qualificação do Pipefy
type Integrator interface {
	// ExportQualificationReport dispara um novo export, aguarda sua
	// conclusão e devolve as linhas do relatório. Retorna
	// ErrReportUnavailable quando o limite de tentativas é atingido.
	ExportQualificationReport() ([]domain.QualificationRecord, error)
}

type PipefyIntegrator struct {
	cfg    *config.Config
	Client pipefyclient.Client

	// Injetáveis nos testes para evitar espera real e rede
	sleep    func(d time.Duration)
	download func(url string) ([]byte, error)
}

func New(cfg *config.Config, client pipefyclient.Client) *PipefyIntegrator {
	return &PipefyIntegrator{
		cfg:      cfg,
		Client:   client,
		sleep:    time.Sleep,
		download: utils.MakeRequest,
	}
}

func (s *PipefyIntegrator) ExportQualificationReport() ([]domain.QualificationRecord, error) {
	// A aquisição do id do export é o único passo fatal: sem ele não há o
	// que consultar e a execução inteira é abortada.
	exportID, err := s.Client.RequestExport()
	if err != nil {
		return nil, errors.Wrap(err, "pipefy: falha ao adquirir o id do export")
	}

	logrus.WithFields(logrus.Fields{
		"export_id":     exportID,
		"max_attempts":  s.cfg.CpqMonitor.MaxReportAttempts,
		"poll_interval": s.cfg.CpqMonitor.PollInterval().String(),
	}).Info("pipefy: export do relatório solicitado, aguardando conclusão")

	for attempt := 1; attempt <= s.cfg.CpqMonitor.MaxReportAttempts; attempt++ {
		export, err := s.Client.GetExport(exportID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"export_id": exportID,
				"attempt":   attempt,
				"error":     err.Error(),
			}).Warn("pipefy: falha transitória ao consultar o export")
			s.sleep(s.cfg.CpqMonitor.PollInterval())
			continue
		}

		if export.State != pipefydomain.StateDone {
			logrus.WithFields(logrus.Fields{
				"export_id": exportID,
				"state":     export.State,
				"attempt":   attempt,
			}).Info("pipefy: relatório ainda não está pronto")
			s.sleep(s.cfg.CpqMonitor.PollInterval())
			continue
		}

		data, err := s.download(export.FileURL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"export_id": exportID,
				"attempt":   attempt,
				"error":     err.Error(),
			}).Warn("pipefy: falha ao baixar o arquivo do relatório")
			s.sleep(s.cfg.CpqMonitor.PollInterval())
			continue
		}

		records, err := parseReport(data)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"export_id": exportID,
				"attempt":   attempt,
				"error":     err.Error(),
			}).Warn("pipefy: falha ao interpretar o arquivo do relatório")
			s.sleep(s.cfg.CpqMonitor.PollInterval())
			continue
		}

		logrus.WithFields(logrus.Fields{
			"export_id": exportID,
			"records":   len(records),
			"attempts":  attempt,
		}).Info("pipefy: relatório de qualificação obtido com sucesso")

		return records, nil
	}

	logrus.WithField("export_id", exportID).Error("pipefy: limite de tentativas atingido sem relatório pronto")

	return nil, ErrReportUnavailable
}

// Formatos de data observados nos exports do Pipefy. Valores fora desses
// formatos viram data ausente (zero), nunca erro.
var createdAtLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01-02-06 15:04",
}

func parseCreatedAt(value string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseReport interpreta a planilha exportada. A primeira linha é o
// cabeçalho; as colunas são localizadas pelo nome, não pela posição.
func parseReport(data []byte) ([]domain.QualificationRecord, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a planilha do relatório")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha do relatório sem abas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler as linhas da planilha")
	}

	if len(rows) == 0 {
		return []domain.QualificationRecord{}, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for idx, header := range rows[0] {
		columns[header] = idx
	}

	for _, required := range []string{columnStage, columnCreatedAt, columnUTMSource, columnUTMMedium, columnUTMCampaign} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("planilha do relatório sem a coluna %q", required)
		}
	}

	cell := func(row []string, column string) string {
		idx := columns[column]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]domain.QualificationRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.QualificationRecord{
			Stage:       cell(row, columnStage),
			CreatedAt:   parseCreatedAt(cell(row, columnCreatedAt)),
			UTMSource:   cell(row, columnUTMSource),
			UTMMedium:   cell(row, columnUTMMedium),
			UTMCampaign: cell(row, columnUTMCampaign),
		})
	}

	return records, nil
}
