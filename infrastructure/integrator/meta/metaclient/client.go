package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

type Client interface {
	GetAdSpendInsightsByAccountID(accountID string) ([]metadomain.AdSpendInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
