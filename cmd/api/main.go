package main

import (
	"context"
	"time"

	"github.com/mleodato/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/repository"
	"github.com/mleodato/restaurant-analytics-api/internal/api"
	"github.com/mleodato/restaurant-analytics-api/internal/config"
	"github.com/mleodato/restaurant-analytics-api/internal/scheduler"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsRepo := repository.NewSalesMetricsRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	analyticsService := analytics.NewService(metricsRepo)

	dashboardSyncService := scheduler.NewDashboardSyncService(analyticsService, snapshotRepo, cfg)
	if err := dashboardSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do dashboard")
	}

	server, err := api.New(cfg, analyticsService, dashboardSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
