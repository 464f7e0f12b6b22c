package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// SalesAggregator calcula as estatísticas de vendas de um intervalo
type SalesAggregator interface {
	CalculateAggregates(ctx context.Context, from, to time.Time, branch string) (*domain.SalesAggregates, error)
}

// Summarizer gera um resumo em linguagem natural. ok=false significa
// indisponível (não configurado, erro de transporte, resposta inválida);
// err fica reservado para falhas inesperadas.
type Summarizer interface {
	GenerateSummary(ctx context.Context, aggregates *domain.SalesAggregates, from, to time.Time) (string, bool, error)
}

type Mailer interface {
	SendSimpleEmail(ctx context.Context, to, subject, body string) error
}

// ReportLocker impede que dois workers processem a mesma solicitação
type ReportLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type JobPublisher interface {
	Submit(job domain.Job) error
}

type ReportService interface {
	RequestSummary(ctx context.Context, actor domain.Actor, req domain.SummaryRequest) (*domain.ReportRequest, error)
	GetReport(ctx context.Context, actor domain.Actor, id string) (*domain.ReportRequest, error)
}
