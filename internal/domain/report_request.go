package domain

import (
	"time"
)

type ReportStatus string

const (
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusDone       ReportStatus = "DONE"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// ReportRequest acompanha o ciclo de vida de um resumo solicitado.
// PROCESSING -> DONE | FAILED; os estados finais não mudam mais.
type ReportRequest struct {
	ID           string       `json:"requestId"`
	FromDate     time.Time    `json:"fromDate"`
	ToDate       time.Time    `json:"toDate"`
	Branch       *string      `json:"branch"`
	EmailTo      string       `json:"emailTo"`
	RequestedBy  string       `json:"requestedBy"`
	Status       ReportStatus `json:"status"`
	RequestedAt  time.Time    `json:"requestedAt"`
	CompletedAt  *time.Time   `json:"completedAt"`
	SummaryText  *string      `json:"summaryText"`
	ErrorMessage *string      `json:"errorMessage"`
}

func (r *ReportRequest) IsTerminal() bool {
	return r.Status == ReportStatusDone || r.Status == ReportStatusFailed
}

func (r *ReportRequest) MarkDone(summary string, at time.Time) {
	r.Status = ReportStatusDone
	r.SummaryText = &summary
	r.ErrorMessage = nil
	r.CompletedAt = &at
}

func (r *ReportRequest) MarkFailed(message string, at time.Time) {
	r.Status = ReportStatusFailed
	r.SummaryText = nil
	r.ErrorMessage = &message
	r.CompletedAt = &at
}

// AnnotateError registra uma falha não fatal sem alterar o status
func (r *ReportRequest) AnnotateError(message string) {
	r.ErrorMessage = &message
}

// BranchFilter retorna "" quando o relatório cobre todas as filiais
func (r *ReportRequest) BranchFilter() string {
	if r.Branch == nil {
		return ""
	}
	return *r.Branch
}

type SummaryRequest struct {
	From    *time.Time `json:"-"`
	To      *time.Time `json:"-"`
	Branch  string     `json:"branch"`
	EmailTo string     `json:"emailTo"`
}
