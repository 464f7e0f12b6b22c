package reporting

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	reportIDPrefix    = "req_"
	defaultRangeDays  = 7
	EstimatedDuration = "30-60 segundos"
)

// Service aceita solicitações de resumo: grava a linha em PROCESSING e
// publica o job; o processamento acontece no Orchestrator.
type Service struct {
	reportRepo repository.ReportRequestRepository
	publisher  JobPublisher
	now        func() time.Time
}

func NewService(reportRepo repository.ReportRequestRepository, publisher JobPublisher) ReportService {
	return &Service{
		reportRepo: reportRepo,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) RequestSummary(ctx context.Context, actor domain.Actor, req domain.SummaryRequest) (*domain.ReportRequest, error) {
	emailTo := strings.TrimSpace(req.EmailTo)
	if !isEmail(emailTo) {
		return nil, ErrInvalidEmail
	}

	now := s.now()
	from, to := resolveRange(now, req.From, req.To)
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	branch := strings.TrimSpace(req.Branch)
	if !actor.IsCentral() {
		if actor.Branch == "" || (branch != "" && branch != actor.Branch) {
			return nil, ErrForbidden
		}
		branch = actor.Branch
	}

	report := &domain.ReportRequest{
		ID:          newReportID(),
		FromDate:    from,
		ToDate:      to,
		EmailTo:     emailTo,
		RequestedBy: actor.Username,
		Status:      domain.ReportStatusProcessing,
		RequestedAt: now,
	}
	if branch != "" {
		report.Branch = &branch
	}

	if _, err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, errors.Wrap(err, "erro ao registrar solicitação de relatório")
	}

	event := domain.ReportRequestedEvent{
		RequestID:   report.ID,
		FromDate:    report.FromDate,
		ToDate:      report.ToDate,
		Branch:      branch,
		EmailTo:     report.EmailTo,
		RequestedBy: report.RequestedBy,
	}

	if err := s.publisher.Submit(domain.NewReportRequestedJob(event)); err != nil {
		logrus.WithError(err).WithField("request_id", report.ID).Error("Erro ao enfileirar relatório")

		report.MarkFailed("não foi possível enfileirar o relatório: "+err.Error(), s.now())
		if _, saveErr := s.reportRepo.Save(ctx, report); saveErr != nil {
			logrus.WithError(saveErr).WithField("request_id", report.ID).Error("Erro ao salvar falha de enfileiramento")
		}
		return nil, errors.Wrap(ErrQueueUnavailable, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"request_id": report.ID,
		"from":       from.Format(time.DateOnly),
		"to":         to.Format(time.DateOnly),
		"branch":     branch,
	}).Info("Solicitação de relatório enfileirada")

	return report, nil
}

func (s *Service) GetReport(ctx context.Context, actor domain.Actor, id string) (*domain.ReportRequest, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar solicitação de relatório")
	}
	if report == nil {
		return nil, ErrReportRequestNotFound
	}

	if !actor.IsCentral() && !actor.CanAccessBranch(report.BranchFilter()) {
		return nil, ErrForbidden
	}

	return report, nil
}

// resolveRange usa por padrão os últimos 7 dias completos, terminando ontem (UTC)
func resolveRange(now time.Time, from, to *time.Time) (time.Time, time.Time) {
	end := startOfDay(now).AddDate(0, 0, -1)
	if to != nil {
		end = startOfDay(*to)
	}

	start := end.AddDate(0, 0, -(defaultRangeDays - 1))
	if from != nil {
		start = startOfDay(*from)
	}

	return start, end
}

func newReportID() string {
	return reportIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func isEmail(value string) bool {
	if value == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
