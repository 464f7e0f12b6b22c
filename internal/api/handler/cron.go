package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Tipos de cron job aceitos em /cron/:type/run
const (
	CronJobTypeReportRetention = "report-retention"
	CronJobTypeAll             = "all"
)

type ManualTrigger interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type StatusReporter interface {
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de background expostos pela API
type CronJobServices struct {
	ReportRetentionService ManualTrigger
	ReportDispatcher       StatusReporter
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeReportRetention, CronJobTypeAll:
			if services.ReportRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de relatórios não disponível", nil)
				return
			}
			services.ReportRetentionService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-retention, all", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs e do pool de relatórios
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportRetentionService != nil {
			status[CronJobTypeReportRetention] = services.ReportRetentionService.GetStatus()
		}
		if services.ReportDispatcher != nil {
			status["report-dispatcher"] = services.ReportDispatcher.GetStatus()
		}

		utils.WriteJSON(w, http.StatusOK, status)
	}
}
