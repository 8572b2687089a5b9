package domain

import "time"

const (
	// StageQualified é a fase do pipe que marca um lead como qualificado
	StageQualified = "Lead qualificado"

	// UTMSourceMeta é o valor de utm_source usado nos anúncios do Meta
	UTMSourceMeta = "facebook"
)

// QualificationRecord representa uma linha do relatório de qualificação
// exportado do Pipefy. CreatedAt zerado indica data ausente ou inválida.
type QualificationRecord struct {
	Stage       string    `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UTMSource   string    `json:"utm_source"`
	UTMMedium   string    `json:"utm_medium"`
	UTMCampaign string    `json:"utm_campaign"`
}

// HasUTM indica se o registro carrega todos os parâmetros de atribuição
func (q QualificationRecord) HasUTM() bool {
	return q.UTMSource != "" && q.UTMMedium != "" && q.UTMCampaign != ""
}

// DailyQualificationCount agrega leads qualificados por dia e utm_campaign
type DailyQualificationCount struct {
	Date        time.Time `json:"date"`
	UTMCampaign string    `json:"utm_campaign"`
	CampaignID  string    `json:"campaign_id"`
	Count       int       `json:"count"`
}
