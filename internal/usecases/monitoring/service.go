package monitoring

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/utils"
)

// Monitor cruza gasto e qualificações e aponta anúncios e campanhas acima
// do limite de CPQ
type Monitor interface {
	ComputeCPQ(spend []domain.SpendRecord, qualifications []domain.QualificationRecord, now time.Time) domain.Alert
}

type Service struct {
	threshold float64
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		threshold: cfg.CpqMonitor.Threshold,
	}
}

// joinKey é a tripla exata do join entre gasto e qualificações
type joinKey struct {
	UTMCampaign string
	Date        string
	CampaignID  string
}

// ComputeCPQ executa o pipeline completo: filtra e agrega qualificações,
// faz o left-join com o gasto, calcula CPQ por anúncio e por campanha e
// seleciona os identificadores acima do limite.
func (s *Service) ComputeCPQ(spend []domain.SpendRecord, qualifications []domain.QualificationRecord, now time.Time) domain.Alert {
	counts := aggregateQualifications(qualifications, now)

	countByKey := make(map[joinKey]int, len(counts))
	for _, count := range counts {
		key := joinKey{
			UTMCampaign: count.UTMCampaign,
			Date:        count.Date.Format(time.DateOnly),
			CampaignID:  count.CampaignID,
		}
		countByKey[key] = count.Count
	}

	// Left-join: todo registro de gasto aparece exatamente uma vez, mesmo
	// sem qualificação correspondente (contagem fica nula, não zero).
	adRows := make([]domain.CpqRow, 0, len(spend))
	for _, record := range spend {
		row := domain.CpqRow{
			UTMCampaign: record.UTMCampaign,
			CampaignID:  record.CampaignID,
			Date:        record.Date,
			Spend:       record.Spend,
		}

		key := joinKey{
			UTMCampaign: record.UTMCampaign,
			Date:        record.Date.Format(time.DateOnly),
			CampaignID:  record.CampaignID,
		}
		if count, ok := countByKey[key]; ok {
			row.QualifiedCount = &count
			if count > 0 {
				cpq := utils.RoundWithTwoDecimalPlace(record.Spend / float64(count))
				row.CPQ = &cpq
			}
		}

		adRows = append(adRows, row)
	}

	campaignRows := rollupByCampaign(adRows)

	alert := domain.Alert{
		ExceedingAds:       []string{},
		ExceedingCampaigns: []string{},
	}

	seenAds := make(map[string]bool)
	for _, row := range adRows {
		if row.HasCPQ() && *row.CPQ > s.threshold && !seenAds[row.UTMCampaign] {
			seenAds[row.UTMCampaign] = true
			alert.ExceedingAds = append(alert.ExceedingAds, row.UTMCampaign)
		}
	}

	seenCampaigns := make(map[string]bool)
	for _, row := range campaignRows {
		if row.CPQ != nil && *row.CPQ > s.threshold && !seenCampaigns[row.CampaignID] {
			seenCampaigns[row.CampaignID] = true
			alert.ExceedingCampaigns = append(alert.ExceedingCampaigns, row.CampaignID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"spend_records":      len(spend),
		"qualification_rows": len(qualifications),
		"daily_counts":       len(counts),
		"ads_over_limit":     len(alert.ExceedingAds),
		"campaigns_over":     len(alert.ExceedingCampaigns),
		"threshold":          s.threshold,
	}).Info("monitoring: cálculo de CPQ concluído")

	return alert
}

// aggregateQualifications filtra os registros relevantes (fase qualificada,
// UTMs presentes, origem Meta, criados hoje) e agrega por dia e utm_campaign
func aggregateQualifications(qualifications []domain.QualificationRecord, now time.Time) []domain.DailyQualificationCount {
	type countKey struct {
		Date        string
		UTMCampaign string
	}

	counts := make(map[countKey]*domain.DailyQualificationCount)
	for _, record := range qualifications {
		if record.Stage != domain.StageQualified || !record.HasUTM() {
			continue
		}
		if record.UTMSource != domain.UTMSourceMeta {
			continue
		}
		if record.CreatedAt.IsZero() || !utils.WithinLastDays(record.CreatedAt, now, 1) {
			continue
		}

		day := utils.TruncateToDay(record.CreatedAt)
		key := countKey{
			Date:        day.Format(time.DateOnly),
			UTMCampaign: record.UTMCampaign,
		}

		if existing, ok := counts[key]; ok {
			existing.Count++
			continue
		}

		counts[key] = &domain.DailyQualificationCount{
			Date:        day,
			UTMCampaign: record.UTMCampaign,
			CampaignID:  campaignIDFromUTM(record.UTMCampaign),
			Count:       1,
		}
	}

	result := make([]domain.DailyQualificationCount, 0, len(counts))
	for _, count := range counts {
		result = append(result, *count)
	}

	return result
}

// rollupByCampaign agrega as linhas de anúncio por campanha: gasto e
// qualificados somados (contagem ausente entra como 0 na soma) e CPQ
// recalculado a partir das somas
func rollupByCampaign(adRows []domain.CpqRow) []domain.CampaignCpqRow {
	rollup := make(map[string]*domain.CampaignCpqRow)
	for _, row := range adRows {
		campaign, ok := rollup[row.CampaignID]
		if !ok {
			campaign = &domain.CampaignCpqRow{
				CampaignID: row.CampaignID,
				Date:       row.Date,
			}
			rollup[row.CampaignID] = campaign
		}

		campaign.Spend += row.Spend
		if row.QualifiedCount != nil {
			campaign.QualifiedCount += *row.QualifiedCount
		}
	}

	result := make([]domain.CampaignCpqRow, 0, len(rollup))
	for _, campaign := range rollup {
		if campaign.QualifiedCount > 0 {
			cpq := utils.RoundWithTwoDecimalPlace(campaign.Spend / float64(campaign.QualifiedCount))
			campaign.CPQ = &cpq
		}
		result = append(result, *campaign)
	}

	return result
}

// campaignIDFromUTM extrai o primeiro segmento da chave composta
func campaignIDFromUTM(utmCampaign string) string {
	return strings.SplitN(utmCampaign, "-", 2)[0]
}
