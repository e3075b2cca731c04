package httpserver

import (
	"context"
	"errors"

	"member-admin/internal/member"
	"member-admin/pkg/discord"
	"member-admin/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() serves.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	environment string

	// Member table
	memberUC member.UseCase

	// Observability
	gatherer    prometheus.Gatherer
	sourceName  string
	sourceCheck func(ctx context.Context) error

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Member table
	MemberUC member.UseCase

	// Observability. SourceCheck is optional and backs /ready.
	Gatherer    prometheus.Gatherer
	SourceName  string
	SourceCheck func(ctx context.Context) error

	// External services
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,

		memberUC: cfg.MemberUC,

		gatherer:    cfg.Gatherer,
		sourceName:  cfg.SourceName,
		sourceCheck: cfg.SourceCheck,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.memberUC == nil {
		return errors.New("member UseCase is required")
	}
	if s.gatherer == nil {
		return errors.New("prometheus Gatherer is required")
	}

	return nil
}
