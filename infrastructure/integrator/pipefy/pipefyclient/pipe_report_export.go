package pipefyclient

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	pipefydomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/domain"
)

type responsePipeReportExport struct {
	Data struct {
		PipeReportExport *pipefydomain.ReportExport `json:"pipeReportExport"`
	} `json:"data"`
}

// GetExport consulta o estado atual de um job de exportação
func (c *PipefyClient) GetExport(exportID string) (*pipefydomain.ReportExport, error) {
	query := fmt.Sprintf(`
	{
		pipeReportExport(id: %s) {
			fileURL
			state
			startedAt
			requestedBy {
				id
			}
		}
	}`, exportID)

	body, err := c.post(query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o export do relatório")
	}

	var response responsePipeReportExport
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a consulta do export")
	}

	if response.Data.PipeReportExport == nil {
		return nil, errors.Errorf("consulta do export sem dados: %s", string(body))
	}

	return response.Data.PipeReportExport, nil
}
