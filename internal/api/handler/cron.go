package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/scheduler"
	"github.com/cruzmath/alert-system-for-meta-ads/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tipos de cron job aceitos pela API
const (
	CronJobTypeCpq = "cpq"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CpqMonitorService *scheduler.CpqMonitorService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCpq:
			if services.CpqMonitorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento de CPQ não disponível", nil)
				return
			}
			services.CpqMonitorService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cpq", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"cpq": services.CpqMonitorService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
