package main

import (
	"context"
	"fmt"

	"member-admin/config"
	configMinio "member-admin/config/minio"
	"member-admin/config/postgre"
	alertUC "member-admin/internal/alert/usecase"
	"member-admin/internal/httpserver"
	"member-admin/internal/member/repository"
	"member-admin/internal/member/repository/memory"
	memberUC "member-admin/internal/member/usecase"
	"member-admin/internal/source"
	sourceHTTP "member-admin/internal/source/http"
	sourceMinio "member-admin/internal/source/minio"
	sourcePostgres "member-admin/internal/source/postgre"
	"member-admin/pkg/discord"
	"member-admin/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Member Admin API
// @description Admin table for browsing, searching, editing and deleting members. Table state lives in server-side views.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.New(log.Options{
		Level:   cfg.Logger.Level,
		Format:  cfg.Logger.Format,
		Color:   cfg.Logger.Color,
		Service: "member-admin",
	})

	ctx := context.Background()

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	// Initialize member source
	src, sourceCheck, closeSource, err := newSource(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize member source: ", err)
		return
	}
	defer closeSource()
	logger.Infof(ctx, "Member source: %s", src.Name())

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize member table
	uc := memberUC.New(logger, src, alertUC.New(logger, discordClient),
		func() repository.Repository { return memory.New(logger) },
		memberUC.Config{
			PageSize:      cfg.View.PageSize,
			TTL:           cfg.View.TTL,
			MaxViews:      cfg.View.MaxViews,
			FetchTimeout:  cfg.Source.Timeout,
			ValidateEdits: cfg.View.ValidateEdits,
			Registerer:    registry,
		})

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Member table
		MemberUC: uc,

		// Observability
		Gatherer:    registry,
		SourceName:  src.Name(),
		SourceCheck: sourceCheck,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// newSource builds the configured member source, its readiness check and its cleanup.
func newSource(ctx context.Context, logger log.Logger, cfg *config.Config) (source.Source, func(context.Context) error, func(), error) {
	switch cfg.Source.Type {
	case config.SourceMinIO:
		client, err := configMinio.ConnectWithRetry(ctx, logger, cfg.MinIO, 0)
		if err != nil {
			return nil, nil, nil, err
		}
		return sourceMinio.New(logger, client, cfg.MinIO.Bucket, cfg.MinIO.Object),
			client.HealthCheck,
			func() { _ = client.Close() },
			nil

	case config.SourcePostgres:
		db, err := postgre.Connect(ctx, logger, cfg.Postgres)
		if err != nil {
			return nil, nil, nil, err
		}
		return sourcePostgres.New(logger, db, cfg.Postgres.Table),
			func(ctx context.Context) error { return postgre.HealthCheck(ctx, db) },
			func() { _ = postgre.Disconnect(ctx, logger, db) },
			nil

	default:
		return sourceHTTP.New(logger, cfg.Source.URL, cfg.Source.Timeout), nil, func() {}, nil
	}
}
