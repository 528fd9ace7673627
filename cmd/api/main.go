// Command api runs the meal planner HTTP API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	aigateway "github.com/platefull/mealplanner/internal/application/ai"
	"github.com/platefull/mealplanner/internal/application/planner"
	"github.com/platefull/mealplanner/internal/infrastructure/ai/ollama"
	"github.com/platefull/mealplanner/internal/infrastructure/ai/openai"
	"github.com/platefull/mealplanner/internal/infrastructure/config"
	"github.com/platefull/mealplanner/internal/infrastructure/http/apiserver"
	gormpersistence "github.com/platefull/mealplanner/internal/infrastructure/persistence/gorm"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	"github.com/platefull/mealplanner/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting meal planner",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))

	db, err := gormpersistence.Open(cfg, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	repos := gormpersistence.NewRepositories(db)
	uow := gormpersistence.NewUnitOfWork(db)

	completer := newCompleter(cfg, log)
	generator := aigateway.NewService(completer, log)
	plannerService := planner.NewService(repos, uow, generator, log)

	server := apiserver.New(cfg, log, repos, plannerService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// newCompleter selects the LLM backend from configuration
func newCompleter(cfg *config.Config, log *zap.Logger) outbound.TextCompleter {
	switch cfg.AI.Provider {
	case "openai":
		return openai.NewClient(cfg.AI.OpenAIKey, cfg.AI.OpenAIBaseURL, cfg.AI.OpenAIModel, cfg.AI.Timeout, log)
	default:
		return ollama.NewClient(cfg.AI.OllamaHost, cfg.AI.OllamaModel, cfg.AI.Timeout, log)
	}
}
