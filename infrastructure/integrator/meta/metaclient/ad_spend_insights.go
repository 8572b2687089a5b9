package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/domain"
)

type ResponseAdSpendInsights struct {
	Data []metadomain.AdSpendInsight `json:"data"`
}

// GetAdSpendInsightsByAccountID busca o gasto de hoje no nível de anúncio,
// usando a configuração de atribuição da conta
func (c *MetaClient) GetAdSpendInsightsByAccountID(accountID string) ([]metadomain.AdSpendInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("level", "ad")
	params.Add("use_account_attribution_setting", "true")
	params.Add("fields", "campaign_id,adset_id,ad_name,spend")
	params.Add("date_preset", "today")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler a resposta")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meta insights retornou status %d: %s", resp.StatusCode, string(body))
	}

	var response ResponseAdSpendInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
