package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-query-api/infrastructure/database/store"
	"github.com/vfg2006/business-query-api/infrastructure/integrator/llama"
	"github.com/vfg2006/business-query-api/infrastructure/integrator/llama/llamaclient"
	"github.com/vfg2006/business-query-api/infrastructure/repository"
	"github.com/vfg2006/business-query-api/internal/api"
	"github.com/vfg2006/business-query-api/internal/config"
	"github.com/vfg2006/business-query-api/internal/scheduler"
	"github.com/vfg2006/business-query-api/internal/usecases/querying"
	"github.com/vfg2006/business-query-api/internal/usecases/reporting"
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

	// O schema do store é criado pelo job de carga externo; aqui só
	// validamos que o banco é alcançável
	st := storeconn(ctx, cfg.Database)

	// Motor de inferência: handle único de processo, criado uma vez.
	// Falha de prontidão aqui é fatal — o processo não aceita requisições
	// sem modelo disponível.
	llamaClient, err := llamaclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do servidor de inferência")
	}
	inferenceEngine := llama.New(cfg, llamaClient)

	pingCtx, pingCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := inferenceEngine.Ping(pingCtx); err != nil {
		logrus.WithError(err).Fatal("Servidor de inferência indisponível")
	}
	pingCancel()
	logrus.Info("Servidor de inferência pronto")

	queryRunner := repository.NewQueryRunner(st)
	metricsRepo := repository.NewMetricsRepository(st)

	queryService := querying.NewService(cfg, inferenceEngine, queryRunner)
	reportService := reporting.NewService(cfg, metricsRepo)

	modelHealthService := scheduler.NewModelHealthService(inferenceEngine, cfg)
	if err := modelHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da sondagem do modelo")
	} else {
		logrus.Info("Agendador da sondagem do modelo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		queryService,
		reportService,
		modelHealthService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// storeconn valida a conexão com o store no startup. As requisições abrem
// e fecham as próprias conexões depois.
func storeconn(ctx context.Context, dbConfig config.Database) *store.Store {
	st, err := store.New(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o store")
	}

	db, err := st.Open(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao store")
	}
	defer db.Close()

	logrus.Info("Conexão com o store validada com sucesso")
	return st
}
