package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/cache"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/modelsclient"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/api/handler"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	reportRepo := repository.NewReportRequestRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	saleService := selling.NewService(saleRepo)

	summarizer := githubmodels.New(cfg, modelsclient.NewClient(cfg))
	if !cfg.LLM.Enabled() {
		logrus.Warn("GITHUB_TOKEN ou MODEL_ID ausente, relatórios usarão apenas o resumo local")
	}

	orchestrator := reporting.NewOrchestrator(
		reportRepo,
		reporting.NewAggregator(saleRepo),
		summarizer,
		mailer.New(cfg),
		reportLocker(cfg.Redis),
		cfg.ReportWorker.LockTTL,
	)

	dispatcher := scheduler.NewDispatcher(cfg)
	dispatcher.Subscribe(domain.JobKindReportRequested, orchestrator.HandleJob)
	if err := dispatcher.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o dispatcher de relatórios")
	}

	reportService := reporting.NewService(reportRepo, dispatcher)

	retentionService := scheduler.NewReportRetentionService(reportRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de relatórios")
	}

	server, err := api.New(
		cfg,
		authenticator,
		saleService,
		reportService,
		handler.CronJobServices{
			ReportRetentionService: retentionService,
			ReportDispatcher:       dispatcher,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	// Drena os relatórios em andamento antes de fechar o banco
	server.OnShutdown(dispatcher.Stop)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env quando executado via go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar o diretório de trabalho")
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// reportLocker usa Redis quando REDIS_ADDR está configurado
func reportLocker(cfg config.Redis) reporting.ReportLocker {
	if cfg.Addr == "" {
		logrus.Info("REDIS_ADDR vazio, lock de relatórios desabilitado")
		return cache.NoopReportLocker{}
	}

	client, err := cache.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem lock de relatórios")
		return cache.NoopReportLocker{}
	}

	logrus.WithField("addr", cfg.Addr).Info("Lock de relatórios via Redis habilitado")
	return cache.NewRedisReportLocker(client)
}
