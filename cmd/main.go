package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meet-lab/api"
	"meet-lab/auth"
	"meet-lab/contract"
	"meet-lab/repositories"
	"meet-lab/services"
	"meet-lab/storage"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle so deferred
// cleanup always runs before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Local storage
	local, closeStorage, err := openStorage(config, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	// 3. Services
	clock := clockwork.NewRealClock()
	tokens := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration, clock)
	sessionRepository := repositories.NewSessionRepository(local, log)
	chatRepository := repositories.NewChatRepository(local, log)
	meetingRepository := repositories.NewMeetingRepository(local)

	authService := services.NewAuthService(sessionRepository, tokens, clock, services.AuthDelays{
		Login:          config.LoginDelay,
		Signup:         config.SignupDelay,
		LoginRedirect:  config.LoginRedirectDelay,
		SignupRedirect: config.SignupRedirectDelay,
	}, log)
	defer authService.Shutdown()
	sessionService := services.NewSessionService(sessionRepository, tokens, log)
	chatService := services.NewChatService(chatRepository, clock, log)
	meetingService := services.NewMeetingService(meetingRepository, sessionService, chatService, clock, config.Origin(), log)

	// 4. HTTP server
	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(authService, sessionService, chatService, meetingService, config.SubmitTimeout, log)
	server := &http.Server{
		Addr:    config.Address(),
		Handler: api.NewRouter(handler),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "storage", config.StorageBackend, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

func openStorage(config Config, log *slog.Logger) (contract.LocalStorage, func(), error) {
	if config.StorageBackend == BackendMemory {
		log.Warn("Using in-memory storage, nothing survives a restart")
		return storage.NewMemoryStorage(), func() {}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	closeDB := func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}
	return storage.NewBadgerStorage(db, log), closeDB, nil
}
