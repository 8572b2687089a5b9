package meta

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/metaclient"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/utils"
)

// Integrator expõe o gasto diário de anúncios do Meta para o monitoramento
type Integrator interface {
	// FetchTodaySpend retorna o gasto de hoje por anúncio. Dia sem dados é
	// um resultado válido: falhas na API viram uma lista vazia, não erro.
	FetchTodaySpend() []domain.SpendRecord
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) FetchTodaySpend() []domain.SpendRecord {
	insights, err := s.Client.GetAdSpendInsightsByAccountID(s.cfg.Meta.AdAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": s.cfg.Meta.AdAccountID,
			"error":      err.Error(),
		}).Error("spend: falha ao buscar insights de gasto no Meta")
		return []domain.SpendRecord{}
	}

	records := make([]domain.SpendRecord, 0, len(insights))
	for _, insight := range insights {
		spend, err := strconv.ParseFloat(insight.Spend, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": insight.CampaignID,
				"ad_name":     insight.AdName,
				"spend_value": insight.Spend,
			}).Warn("spend: erro ao converter gasto para float, pulando linha")
			continue
		}

		date, err := utils.ParseDate(insight.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": insight.CampaignID,
				"ad_name":     insight.AdName,
				"date_start":  insight.DateStart,
			}).Warn("spend: erro ao converter data, pulando linha")
			continue
		}

		records = append(records, domain.SpendRecord{
			CampaignID:  insight.CampaignID,
			AdsetID:     insight.AdsetID,
			AdName:      insight.AdName,
			Spend:       spend,
			Date:        utils.TruncateToDay(*date),
			UTMCampaign: domain.BuildUTMCampaign(insight.CampaignID, insight.AdsetID, insight.AdName),
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": s.cfg.Meta.AdAccountID,
		"records":    len(records),
	}).Debug("spend: gasto de hoje obtido com sucesso")

	return records
}
