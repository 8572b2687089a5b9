package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/metaclient"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/notifier"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/api"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/scheduler"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/usecases/monitoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	pipefyClient := pipefyclient.NewClient(cfg)
	pipefyIntegrator := pipefy.New(cfg, pipefyClient)

	monitorService := monitoring.NewService(cfg)

	emailChannel := notifier.NewEmailChannel(cfg)
	slackChannel := notifier.NewSlackChannel(cfg)
	dispatcher := notifier.NewDispatcher(cfg, emailChannel, slackChannel)

	cpqMonitorService := scheduler.NewCpqMonitorService(
		metaIntegrator,
		pipefyIntegrator,
		monitorService,
		dispatcher,
		cfg,
	)

	// Em modo RUN_ONCE o processo executa o pipeline uma única vez e
	// termina (invocação por agendador externo). O único erro que chega
	// aqui é o fatal: falha ao adquirir o id do export.
	if cfg.CpqMonitor.RunOnce {
		if err := cpqMonitorService.RunOnce(ctx); err != nil {
			logrus.WithError(err).Fatal("Execução do monitoramento de CPQ abortada")
		}
		return
	}

	// Em modo agendado o job roda no cron configurado e a API operacional
	// fica disponível para healthcheck, execução manual e status
	if err := cpqMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador do monitoramento de CPQ")
	}
	logrus.Info("Agendador do monitoramento de CPQ iniciado com sucesso")

	server, err := api.New(cfg, cpqMonitorService)
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
