package domain

import "time"

type JobKind string

const (
	JobKindReportRequested JobKind = "report.requested"
)

// Job é a unidade de trabalho submetida ao pool de workers
type Job struct {
	Kind    JobKind
	Payload any
}

// ReportRequestedEvent é o payload de JobKindReportRequested
type ReportRequestedEvent struct {
	RequestID   string
	FromDate    time.Time
	ToDate      time.Time
	Branch      string
	EmailTo     string
	RequestedBy string
}

func NewReportRequestedJob(event ReportRequestedEvent) Job {
	return Job{
		Kind:    JobKindReportRequested,
		Payload: event,
	}
}
