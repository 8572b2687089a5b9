package domain

import (
	"fmt"
	"time"
)

// SpendRecord representa o gasto de um anúncio do Meta em um dia específico.
// A chave UTMCampaign identifica o anúncio nas duas fontes de dados.
type SpendRecord struct {
	CampaignID  string    `json:"campaign_id"`
	AdsetID     string    `json:"adset_id"`
	AdName      string    `json:"ad_name"`
	Spend       float64   `json:"spend"`
	Date        time.Time `json:"date"`
	UTMCampaign string    `json:"utm_campaign"`
}

// BuildUTMCampaign deriva a chave composta usada na atribuição dos leads
func BuildUTMCampaign(campaignID, adsetID, adName string) string {
	return fmt.Sprintf("%s-%s-%s", campaignID, adsetID, adName)
}
