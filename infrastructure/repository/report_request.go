package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	reportRequestsTable = "report_requests"
)

type ReportRequestRepository interface {
	FindByID(ctx context.Context, id string) (*domain.ReportRequest, error)
	Save(ctx context.Context, report *domain.ReportRequest) (*domain.ReportRequest, error)
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type reportRequestRepository struct {
	conn postgres.Conn
}

func NewReportRequestRepository(conn postgres.Conn) ReportRequestRepository {
	return &reportRequestRepository{
		conn: conn,
	}
}

func (r *reportRequestRepository) FindByID(ctx context.Context, id string) (*domain.ReportRequest, error) {
	query, args, err := squirrel.
		Select(
			"id", "from_date", "to_date", "branch", "email_to", "requested_by",
			"status", "requested_at", "completed_at", "summary_text", "error_message",
		).
		From(reportRequestsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var report domain.ReportRequest
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&report.ID,
		&report.FromDate,
		&report.ToDate,
		&report.Branch,
		&report.EmailTo,
		&report.RequestedBy,
		&report.Status,
		&report.RequestedAt,
		&report.CompletedAt,
		&report.SummaryText,
		&report.ErrorMessage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar solicitação de relatório: %w", err)
	}

	report.FromDate = report.FromDate.UTC()
	report.ToDate = report.ToDate.UTC()

	return &report, nil
}

// Save insere ou sobrescreve a solicitação inteira
func (r *reportRequestRepository) Save(ctx context.Context, report *domain.ReportRequest) (*domain.ReportRequest, error) {
	query, args, err := squirrel.
		Insert(reportRequestsTable).
		Columns(
			"id", "from_date", "to_date", "branch", "email_to", "requested_by",
			"status", "requested_at", "completed_at", "summary_text", "error_message",
		).
		Values(
			report.ID,
			report.FromDate.Format(time.DateOnly),
			report.ToDate.Format(time.DateOnly),
			report.Branch,
			report.EmailTo,
			report.RequestedBy,
			report.Status,
			report.RequestedAt,
			report.CompletedAt,
			report.SummaryText,
			report.ErrorMessage,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				completed_at = EXCLUDED.completed_at,
				summary_text = EXCLUDED.summary_text,
				error_message = EXCLUDED.error_message
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao salvar solicitação de relatório: %w", err)
	}

	return report, nil
}

func (r *reportRequestRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(reportRequestsTable).
		Where(squirrel.NotEq{"status": domain.ReportStatusProcessing}).
		Where(squirrel.Lt{"completed_at": cutoff.UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover solicitações antigas: %w", err)
	}

	return result.RowsAffected()
}
