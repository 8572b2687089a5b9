package domain

import "time"

// CpqRow é o resultado do join entre gasto e qualificações no nível de
// anúncio. QualifiedCount nulo significa que nenhum lead qualificado foi
// atribuído ao anúncio no dia; nesse caso CPQ permanece nulo e a linha fica
// fora da avaliação de limite (nunca zero, infinito ou NaN).
type CpqRow struct {
	UTMCampaign    string    `json:"utm_campaign"`
	CampaignID     string    `json:"campaign_id"`
	Date           time.Time `json:"date"`
	Spend          float64   `json:"spend"`
	QualifiedCount *int      `json:"qualified_count,omitempty"`
	CPQ            *float64  `json:"cpq,omitempty"`
}

// CampaignCpqRow é a agregação de CpqRow por campanha: gasto e qualificados
// somados e CPQ recalculado a partir das somas (nunca média dos CPQs).
type CampaignCpqRow struct {
	CampaignID     string    `json:"campaign_id"`
	Date           time.Time `json:"date"`
	Spend          float64   `json:"spend"`
	QualifiedCount int       `json:"qualified_count"`
	CPQ            *float64  `json:"cpq,omitempty"`
}

// HasCPQ indica se a linha participa da avaliação de limite
func (r CpqRow) HasCPQ() bool {
	return r.CPQ != nil
}
