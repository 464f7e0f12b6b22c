package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var (
	centralActor = domain.Actor{Username: "admin", Role: domain.RoleCentral}
	branchActor  = domain.Actor{Username: "ana", Role: domain.RoleBranch, Branch: "Miraflores"}
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestService_RequestSummary(t *testing.T) {
	now := time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		actor    domain.Actor
		req      domain.SummaryRequest
		setup    func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher)
		validate func(t *testing.T, report *domain.ReportRequest, err error)
	}{
		{
			name:  "Sem datas usa os 7 dias completos até ontem",
			actor: centralActor,
			req:   domain.SummaryRequest{EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.ReportRequest) (*domain.ReportRequest, error) {
						assert.Equal(t, domain.ReportStatusProcessing, r.Status)
						assert.Nil(t, r.CompletedAt)
						return r, nil
					})
				publisher.EXPECT().
					Submit(gomock.Any()).
					DoAndReturn(func(job domain.Job) error {
						assert.Equal(t, domain.JobKindReportRequested, job.Kind)
						event, ok := job.Payload.(domain.ReportRequestedEvent)
						require.True(t, ok)
						assert.Equal(t, date(2025, 9, 3), event.FromDate)
						assert.Equal(t, date(2025, 9, 9), event.ToDate)
						assert.Empty(t, event.Branch)
						assert.Equal(t, "admin", event.RequestedBy)
						return nil
					})
			},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				require.NoError(t, err)
				assert.Regexp(t, `^req_[0-9a-f]{32}$`, report.ID)
				assert.Equal(t, date(2025, 9, 3), report.FromDate)
				assert.Equal(t, date(2025, 9, 9), report.ToDate)
				assert.Nil(t, report.Branch)
				assert.Equal(t, now, report.RequestedAt)
			},
		},
		{
			name:  "Somente a data final recua 6 dias a partir dela",
			actor: centralActor,
			req:   domain.SummaryRequest{To: datePtr(2025, 8, 31), EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, nil)
				publisher.EXPECT().Submit(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				require.NoError(t, err)
				assert.Equal(t, date(2025, 8, 25), report.FromDate)
				assert.Equal(t, date(2025, 8, 31), report.ToDate)
			},
		},
		{
			name:  "Data inicial depois da final é inválida",
			actor: centralActor,
			req:   domain.SummaryRequest{From: datePtr(2025, 9, 9), To: datePtr(2025, 9, 1), EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
		{
			name:  "Email inválido",
			actor: centralActor,
			req:   domain.SummaryRequest{EmailTo: "not-an-email"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			},
		},
		{
			name:  "BRANCH sem filial informada usa a própria",
			actor: branchActor,
			req:   domain.SummaryRequest{EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, nil)
				publisher.EXPECT().
					Submit(gomock.Any()).
					DoAndReturn(func(job domain.Job) error {
						assert.Equal(t, "Miraflores", job.Payload.(domain.ReportRequestedEvent).Branch)
						return nil
					})
			},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				require.NoError(t, err)
				require.NotNil(t, report.Branch)
				assert.Equal(t, "Miraflores", *report.Branch)
			},
		},
		{
			name:  "BRANCH não pede resumo de outra filial",
			actor: branchActor,
			req:   domain.SummaryRequest{Branch: "San Isidro", EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				assert.ErrorIs(t, err, ErrForbidden)
			},
		},
		{
			name:  "Fila cheia marca a solicitação como FAILED",
			actor: centralActor,
			req:   domain.SummaryRequest{Branch: "San Isidro", EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {
				var statuses []domain.ReportStatus
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.ReportRequest) (*domain.ReportRequest, error) {
						statuses = append(statuses, r.Status)
						return r, nil
					}).
					Times(2)
				publisher.EXPECT().Submit(gomock.Any()).Return(errors.New("fila de jobs cheia"))

				t.Cleanup(func() {
					assert.Equal(t, []domain.ReportStatus{domain.ReportStatusProcessing, domain.ReportStatusFailed}, statuses)
				})
			},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				assert.ErrorIs(t, err, ErrQueueUnavailable)
				assert.Nil(t, report)
			},
		},
		{
			name:  "Erro ao gravar a solicitação não publica o job",
			actor: centralActor,
			req:   domain.SummaryRequest{EmailTo: "ana@oreo.com"},
			setup: func(repo *repomocks.MockReportRequestRepository, publisher *mocks.MockJobPublisher) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, report *domain.ReportRequest, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockReportRequestRepository(ctrl)
			publisher := mocks.NewMockJobPublisher(ctrl)

			service := &Service{
				reportRepo: repo,
				publisher:  publisher,
				now:        func() time.Time { return now },
			}

			tt.setup(repo, publisher)
			report, err := service.RequestSummary(context.Background(), tt.actor, tt.req)
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockReportRequestRepository(ctrl)
	service := NewService(repo, nil)

	miraflores := processingReport()
	miraflores.Branch = strPtr("Miraflores")

	sanIsidro := processingReport()
	sanIsidro.Branch = strPtr("San Isidro")

	allBranches := processingReport()

	t.Run("Inexistente", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "req_x").Return(nil, nil)

		_, err := service.GetReport(context.Background(), centralActor, "req_x")
		assert.ErrorIs(t, err, ErrReportRequestNotFound)
	})

	t.Run("BRANCH lê relatório da própria filial", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "req_1").Return(miraflores, nil)

		report, err := service.GetReport(context.Background(), branchActor, "req_1")
		require.NoError(t, err)
		assert.Equal(t, miraflores, report)
	})

	t.Run("BRANCH não lê relatório de outra filial", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "req_1").Return(sanIsidro, nil)

		_, err := service.GetReport(context.Background(), branchActor, "req_1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("BRANCH não lê relatório de todas as filiais", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "req_1").Return(allBranches, nil)

		_, err := service.GetReport(context.Background(), branchActor, "req_1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("CENTRAL lê qualquer relatório", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "req_1").Return(sanIsidro, nil)

		report, err := service.GetReport(context.Background(), centralActor, "req_1")
		require.NoError(t, err)
		assert.Equal(t, "San Isidro", *report.Branch)
	})
}
