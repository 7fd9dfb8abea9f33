package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mleodato/restaurant-analytics-api/internal/scheduler"
	"github.com/mleodato/restaurant-analytics-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job que podem ser disparados manualmente
const (
	CronJobTypeDashboard = "dashboard"
)

// CronJobServices contém os serviços de cron expostos pela API
type CronJobServices struct {
	DashboardSyncService *scheduler.DashboardSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDashboard:
			if services.DashboardSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot do dashboard não disponível", nil)
				return
			}
			services.DashboardSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardSyncService != nil {
			status["dashboard"] = services.DashboardSyncService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
