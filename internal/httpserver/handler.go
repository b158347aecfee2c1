package httpserver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "channel-finance-assistant/internal/chat/delivery/http"
	"channel-finance-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerStaticRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, allowed origins: %v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, allowed origins: %v", srv.environment, srv.allowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerStaticRoutes serves the optional web frontend.
func (srv HTTPServer) registerStaticRoutes() {
	if srv.staticDir == "" {
		return
	}
	ctx := context.Background()
	if info, err := os.Stat(srv.staticDir); err != nil || !info.IsDir() {
		srv.l.Warnf(ctx, "Static directory %q not usable, frontend disabled: %v", srv.staticDir, err)
		return
	}

	srv.gin.Static("/static", srv.staticDir)
	index := filepath.Join(srv.staticDir, "index.html")
	srv.gin.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	srv.l.Infof(ctx, "Static frontend served from %s", srv.staticDir)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat routes registered at POST /chat and POST /clear/:session_id")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
