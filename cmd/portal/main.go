package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"diag-hub/auth"
	"diag-hub/backend"
	"diag-hub/domain"
	"diag-hub/infrastructure/web"
	"diag-hub/internal"
	"diag-hub/moderation"
	"diag-hub/observability"
	"diag-hub/services"
	"diag-hub/session"
	"diag-hub/sink"
)

// Exit codes to provide meaningful status to the operating system or
// service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper. Its only responsibility is
	// to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Portal terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle and
// centralizes error reporting, so deferred cleanup always executes before
// the process exits.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	censoredChar, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	logger := internal.NewLogger(config.LogLevel)

	// 2. Core components
	gate := auth.NewGate(config.AccessKey)
	issuer, err := auth.NewTokenIssuer(config.SessionTokenDuration)
	if err != nil {
		return exitRuntime, fmt.Errorf("token issuer init failed: %w", err)
	}
	sessions := session.NewManager(gate, config.SessionTokenDuration, logger)
	monitor := observability.NewMonitor(logger)

	catalog := domain.DefaultCatalog()
	diagnostics := services.NewDiagnosticService(
		catalog,
		backend.DefaultRegistry(),
		logger,
		config.BackendTimeout,
	)

	moderator, err := moderation.NewModerator(config.CensoredWordList(), censoredChar)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	logSink := sink.NewCSVSink(config.FeedbackLogPath, logger)
	mailSink := sink.NewMailSink(
		config.SMTPHost, config.SMTPPort,
		config.EmailUser, config.EmailPass, config.EmailTo,
		config.NotifyTimeout,
		logger,
	)
	feedback := services.NewFeedbackService(logSink, mailSink, moderator, logger)

	assets := web.NewAssetStore(config.AssetsDir, logger)

	// 3. Transport
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := web.NewPortalServer(
		addr,
		logger,
		sessions,
		issuer,
		diagnostics,
		feedback,
		web.JSONRenderer{},
		monitor,
		assets,
		catalog,
		config.MaxUploadBytes,
	)

	// 4. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions.StartJanitor(ctx)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("portal server error: %w", err)
		}
	}()

	// 5. Wait for stop or error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 6. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("Portal stopped cleanly")

	return exitOK, nil
}
