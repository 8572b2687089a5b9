package pipefyclient

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type responseExportPipeReport struct {
	Data struct {
		ExportPipeReport struct {
			PipeReportExport struct {
				ID string `json:"id"`
			} `json:"pipeReportExport"`
		} `json:"exportPipeReport"`
	} `json:"data"`
}

// RequestExport dispara a exportação do relatório de qualificação e retorna
// o identificador do job. Sem esse identificador não há como acompanhar o
// export, então qualquer falha aqui é fatal para a execução.
func (c *PipefyClient) RequestExport() (string, error) {
	query := fmt.Sprintf(`
	mutation {
		exportPipeReport(input: {pipeId: %s, pipeReportId: %s}) {
			pipeReportExport {
				id
			}
		}
	}`, c.config.Pipefy.PipeID, c.config.Pipefy.ReportID)

	body, err := c.post(query)
	if err != nil {
		return "", errors.Wrap(err, "erro ao solicitar a exportação do relatório")
	}

	var response responseExportPipeReport
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar a resposta da exportação")
	}

	exportID := response.Data.ExportPipeReport.PipeReportExport.ID
	if exportID == "" {
		return "", errors.Errorf("resposta da exportação sem id do export: %s", string(body))
	}

	return exportID, nil
}
