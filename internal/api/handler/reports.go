package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const acceptedMessage = "Su solicitud de reporte está siendo procesada. Recibirá el resumen en %s en unos momentos."

// SummaryRequestBody recebe as datas como YYYY-MM-DD; ausentes usam a última semana
type SummaryRequestBody struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Branch  string `json:"branch"`
	EmailTo string `json:"emailTo"`
}

type SummaryAcceptedResponse struct {
	RequestID     string              `json:"requestId"`
	Status        domain.ReportStatus `json:"status"`
	Message       string              `json:"message"`
	EstimatedTime string              `json:"estimatedTime"`
	RequestedAt   time.Time           `json:"requestedAt"`
}

func RequestWeeklySummary(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var body SummaryRequestBody
		if err := utils.DecodeJSON(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		from, err := utils.ParseDate(body.From)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campo 'from' inválido. Use o formato YYYY-MM-DD", nil)
			return
		}

		to, err := utils.ParseDate(body.To)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campo 'to' inválido. Use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.RequestSummary(r.Context(), actor, domain.SummaryRequest{
			From:    from,
			To:      to,
			Branch:  body.Branch,
			EmailTo: body.EmailTo,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao solicitar relatório")
			return
		}

		utils.WriteJSON(w, http.StatusAccepted, SummaryAcceptedResponse{
			RequestID:     report.ID,
			Status:        report.Status,
			Message:       fmt.Sprintf(acceptedMessage, report.EmailTo),
			EstimatedTime: reporting.EstimatedDuration,
			RequestedAt:   report.RequestedAt,
		})
	}
}

func GetReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		report, err := service.GetReport(r.Context(), actor, id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar relatório")
			return
		}

		utils.WriteJSON(w, http.StatusOK, report)
	}
}
