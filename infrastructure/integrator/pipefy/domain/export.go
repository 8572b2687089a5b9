package pipefydomain

// StateDone é o único estado do export que encerra a espera com sucesso
const StateDone = "done"

// ReportExport é o estado de um job de exportação de relatório no Pipefy
type ReportExport struct {
	FileURL     string      `json:"fileURL"`
	State       string      `json:"state"`
	StartedAt   string      `json:"startedAt"`
	RequestedBy RequestedBy `json:"requestedBy"`
}

type RequestedBy struct {
	ID string `json:"id"`
}
