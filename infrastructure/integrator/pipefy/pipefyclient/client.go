package pipefyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pipefydomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

type Client interface {
	RequestExport() (string, error)
	GetExport(exportID string) (*pipefydomain.ReportExport, error)
}

type PipefyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PipefyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type graphqlRequest struct {
	Query string `json:"query"`
}

// post envia uma consulta GraphQL autenticada e retorna o corpo da resposta
func (c *PipefyClient) post(query string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	payload, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Pipefy.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Pipefy.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, string(body))
	}

	return body, nil
}
