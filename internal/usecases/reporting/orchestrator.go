package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const emailErrorPrefix = "email error: "

// Orchestrator conduz uma solicitação de relatório de PROCESSING até DONE
// ou FAILED: agrega, resume (externo com fallback), persiste e envia.
type Orchestrator struct {
	reportRepo repository.ReportRequestRepository
	aggregator SalesAggregator
	summarizer Summarizer
	mailer     Mailer
	locker     ReportLocker
	lockTTL    time.Duration
	now        func() time.Time
}

func NewOrchestrator(
	reportRepo repository.ReportRequestRepository,
	aggregator SalesAggregator,
	summarizer Summarizer,
	mailer Mailer,
	locker ReportLocker,
	lockTTL time.Duration,
) *Orchestrator {
	return &Orchestrator{
		reportRepo: reportRepo,
		aggregator: aggregator,
		summarizer: summarizer,
		mailer:     mailer,
		locker:     locker,
		lockTTL:    lockTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// HandleJob é registrado no dispatcher para domain.JobKindReportRequested
func (o *Orchestrator) HandleJob(ctx context.Context, job domain.Job) error {
	event, ok := job.Payload.(domain.ReportRequestedEvent)
	if !ok {
		return errors.Wrapf(ErrInvalidPayload, "kind=%s payload=%T", job.Kind, job.Payload)
	}
	return o.HandleReportRequested(ctx, event)
}

// HandleReportRequested processa um evento. Só retorna erro quando a
// solicitação não pode ser carregada ou o estado final não pode ser salvo;
// falhas de cálculo terminam em FAILED e retornam nil.
func (o *Orchestrator) HandleReportRequested(ctx context.Context, event domain.ReportRequestedEvent) error {
	logger := logrus.WithFields(logrus.Fields{
		"request_id":   event.RequestID,
		"branch":       event.Branch,
		"requested_by": event.RequestedBy,
	})

	if o.locker != nil {
		acquired, err := o.locker.Acquire(ctx, event.RequestID, o.lockTTL)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Erro ao adquirir lock do relatório, processando sem lock")
		case !acquired:
			logger.Info("Relatório já em processamento por outro worker, ignorando")
			return nil
		default:
			defer func() {
				if err := o.locker.Release(ctx, event.RequestID); err != nil {
					logger.WithError(err).Warn("Erro ao liberar lock do relatório")
				}
			}()
		}
	}

	report, err := o.reportRepo.FindByID(ctx, event.RequestID)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar solicitação de relatório")
		return errors.Wrap(err, "erro ao carregar solicitação de relatório")
	}
	if report == nil {
		logger.Error("Solicitação de relatório não encontrada")
		return ErrReportRequestNotFound
	}

	if report.IsTerminal() {
		logger.WithField("status", report.Status).Info("Solicitação já finalizada, ignorando evento repetido")
		return nil
	}

	startTime := time.Now()

	summary, err := o.buildSummary(ctx, event, logger)
	if err != nil {
		return o.fail(ctx, report, err, logger)
	}

	report.MarkDone(summary, o.now())
	if _, err := o.reportRepo.Save(ctx, report); err != nil {
		logger.WithError(err).Error("Erro ao salvar relatório concluído")
		return o.fail(ctx, report, err, logger)
	}

	logger.WithField("duration", time.Since(startTime).String()).Info("Relatório concluído")

	o.deliver(ctx, report, event, summary, logger)
	return nil
}

func (o *Orchestrator) buildSummary(ctx context.Context, event domain.ReportRequestedEvent, logger *logrus.Entry) (string, error) {
	if event.FromDate.IsZero() || event.ToDate.IsZero() {
		return "", ErrDatesRequired
	}

	from, to := DayRange(event.FromDate, event.ToDate)

	aggregates, err := o.aggregator.CalculateAggregates(ctx, from, to, event.Branch)
	if err != nil {
		return "", errors.Wrap(err, ErrAggregationFailed.Error())
	}
	if aggregates == nil {
		return "", ErrAggregationFailed
	}

	logger.WithFields(logrus.Fields{
		"total_units":   aggregates.TotalUnits,
		"total_revenue": aggregates.FormattedRevenue(),
	}).Debug("Agregados calculados")

	if summary, ok := o.externalSummary(ctx, aggregates, event, logger); ok {
		return summary, nil
	}

	return BuildSimpleSummary(aggregates), nil
}

// externalSummary nunca propaga falhas do cliente, nem panics
func (o *Orchestrator) externalSummary(
	ctx context.Context,
	aggregates *domain.SalesAggregates,
	event domain.ReportRequestedEvent,
	logger *logrus.Entry,
) (summary string, accepted bool) {
	if o.summarizer == nil {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Falha inesperada no cliente de resumo, usando resumo padrão")
			summary, accepted = "", false
		}
	}()

	text, ok, err := o.summarizer.GenerateSummary(ctx, aggregates, event.FromDate, event.ToDate)
	if err != nil {
		logger.WithError(err).Warn("Erro ao gerar resumo externo, usando resumo padrão")
		return "", false
	}
	if !ok {
		logger.Debug("Resumo externo indisponível, usando resumo padrão")
		return "", false
	}

	if !IsValidSummary(text, aggregates) {
		logger.WithField("words", len(strings.Fields(text))).Warn("Resumo externo rejeitado na validação, usando resumo padrão")
		return "", false
	}

	return text, true
}

func (o *Orchestrator) fail(ctx context.Context, report *domain.ReportRequest, cause error, logger *logrus.Entry) error {
	report.MarkFailed(cause.Error(), o.now())

	if _, err := o.reportRepo.Save(ctx, report); err != nil {
		logger.WithError(err).Error("Erro ao salvar falha do relatório")
		return errors.Wrap(err, "erro ao salvar falha do relatório")
	}

	logger.WithError(cause).Warn("Relatório finalizado com falha")
	return nil
}

// deliver não altera o status DONE; falhas viram anotação em errorMessage
func (o *Orchestrator) deliver(
	ctx context.Context,
	report *domain.ReportRequest,
	event domain.ReportRequestedEvent,
	summary string,
	logger *logrus.Entry,
) {
	to := strings.TrimSpace(event.EmailTo)
	if to == "" || !strings.Contains(to, "@") {
		logger.WithField("email_to", event.EmailTo).Warn("Email de destino ausente ou inválido, envio ignorado")
		return
	}

	subject := EmailSubject(event.FromDate, event.ToDate)
	if err := o.mailer.SendSimpleEmail(ctx, to, subject, EmailBody(summary)); err != nil {
		logger.WithError(err).Error("Erro ao enviar email do relatório")

		report.AnnotateError(emailErrorPrefix + err.Error())
		if _, err := o.reportRepo.Save(ctx, report); err != nil {
			logger.WithError(err).Error("Erro ao salvar anotação de erro de email")
		}
		return
	}

	logger.WithField("email_to", to).Info("Email do relatório enviado")
}
