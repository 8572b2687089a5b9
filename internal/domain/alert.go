package domain

// Alert é o artefato final do monitoramento: os identificadores de anúncios
// e campanhas cujo CPQ ultrapassou o limite configurado. Os conjuntos são
// deduplicados e sem garantia de ordem.
type Alert struct {
	ExceedingAds       []string `json:"exceeding_ads"`
	ExceedingCampaigns []string `json:"exceeding_campaigns"`
}

// Empty indica se nenhum anúncio ou campanha ultrapassou o limite
func (a Alert) Empty() bool {
	return len(a.ExceedingAds) == 0 && len(a.ExceedingCampaigns) == 0
}
