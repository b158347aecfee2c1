package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "channel-finance-assistant/internal/chat/delivery/http"
	tgDelivery "channel-finance-assistant/internal/chat/delivery/telegram"
	"channel-finance-assistant/internal/middleware"
	"channel-finance-assistant/internal/session"
	"channel-finance-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// StatsProvider reports session store usage for the readiness check.
type StatsProvider interface {
	Stats(ctx context.Context) session.Stats
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	staticDir       string
	shutdownTimeout time.Duration

	// Chat domain
	middleware      middleware.Middleware
	chatHandler     chatHTTP.Handler
	telegramHandler tgDelivery.Handler
	stats           StatsProvider
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	StaticDir       string
	ShutdownTimeout time.Duration

	// Chat domain
	Middleware      middleware.Middleware
	ChatHandler     chatHTTP.Handler
	TelegramHandler tgDelivery.Handler // optional
	Stats           StatsProvider      // optional
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		staticDir:       cfg.StaticDir,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		chatHandler:     cfg.ChatHandler,
		telegramHandler: cfg.TelegramHandler,
		stats:           cfg.Stats,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if len(srv.allowedOrigins) == 0 {
		srv.allowedOrigins = []string{"*"}
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
