package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"channel-finance-assistant/config"
	_ "channel-finance-assistant/docs" // Swagger docs
	chatHTTP "channel-finance-assistant/internal/chat/delivery/http"
	tgDelivery "channel-finance-assistant/internal/chat/delivery/telegram"
	chatUC "channel-finance-assistant/internal/chat/usecase"
	"channel-finance-assistant/internal/filter"
	"channel-finance-assistant/internal/history"
	"channel-finance-assistant/internal/httpserver"
	"channel-finance-assistant/internal/middleware"
	"channel-finance-assistant/internal/session"
	"channel-finance-assistant/internal/session/repository"
	"channel-finance-assistant/internal/session/repository/memory"
	"channel-finance-assistant/pkg/llmprovider"
	"channel-finance-assistant/pkg/log"
	"channel-finance-assistant/pkg/telegram"
)

// @title       Channel Finance Assistant API
// @description Loan and banking assistant with content filtering, session memory and multi-provider LLM fallback.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  chatLogPaths(cfg.Logger.ChatLogDir),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Channel Finance Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM manager config: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range llmManager.Providers() {
		logger.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	// 4. Chat domain
	retention, err := session.ParseRetention(cfg.Session.Retention)
	if err != nil {
		logger.Errorf(ctx, "Invalid session config: %v", err)
		return
	}
	sessionRepo, err := memory.New(logger, repository.Options{
		Retention:   retention,
		WindowSize:  cfg.Chat.WindowSize,
		MaxRetained: cfg.Session.MaxRetainedTurns,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize session store: %v", err)
		return
	}
	logger.Infof(ctx, "Session store: retention=%s window=%d", retention, cfg.Chat.WindowSize)

	formatter := history.New(logger, sessionRepo,
		history.NewLLMSummarizer(llmManager, history.SummarizerConfig{
			Temperature: cfg.Chat.SummaryTemperature,
			MaxTokens:   cfg.Chat.SummaryMaxTokens,
		}),
		history.Config{
			WindowSize:     cfg.Chat.WindowSize,
			SummaryTimeout: cfg.Chat.SummaryTimeout,
		},
	)

	chatUseCase := chatUC.New(logger, filter.New(), formatter, sessionRepo, llmManager, chatUC.Config{
		SystemPrompt:   cfg.Chat.SystemPrompt,
		Temperature:    cfg.Chat.Temperature,
		MaxTokens:      cfg.Chat.MaxTokens,
		RequestTimeout: cfg.Chat.RequestTimeout,
	})

	mw := middleware.New(logger, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		Burst:            cfg.RateLimit.Burst,
	})

	// 5. Telegram transport (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot, tgErr := telegram.New(telegram.Config{Token: cfg.Telegram.BotToken})
		if tgErr != nil {
			logger.Errorf(ctx, "Failed to initialize Telegram bot: %v", tgErr)
			return
		}
		telegramHandler = tgDelivery.New(logger, chatUseCase, bot)

		if webhookURL := resolveWebhookURL(ctx, cfg.Telegram, logger); webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		StaticDir:       cfg.HTTPServer.StaticDir,
		Middleware:      mw,
		ChatHandler:     chatHTTP.New(logger, chatUseCase),
		TelegramHandler: telegramHandler,
		Stats:           chatUseCase,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// chatLogPaths returns the daily chat log file, creating its directory.
func chatLogPaths(dir string) []string {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Println("Chat log directory unavailable: ", err)
		return nil
	}
	return []string{filepath.Join(dir, "chat_"+time.Now().Format("20060102")+".log")}
}
