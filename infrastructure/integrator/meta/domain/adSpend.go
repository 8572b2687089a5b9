package metadomain

// AdSpendInsight é a linha retornada pelo endpoint de insights do Meta no
// nível de anúncio. O Meta serializa spend como string; date_stop é
// descartado na conversão para o domínio interno.
type AdSpendInsight struct {
	CampaignID string `json:"campaign_id"`
	AdsetID    string `json:"adset_id"`
	AdName     string `json:"ad_name"`
	Spend      string `json:"spend"`
	DateStart  string `json:"date_start"`
	DateStop   string `json:"date_stop"`
}
