package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"spendlens/internal/config"
	"spendlens/internal/handler"
	"spendlens/internal/logger"
	"spendlens/internal/port"
	"spendlens/internal/repository/postgres"
	"spendlens/internal/router"
	"spendlens/internal/service"
	"spendlens/internal/sqlgen"
	"spendlens/internal/sqlgen/openai"
	"spendlens/internal/sqlgen/vanna"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	analyticsRepo := postgres.NewAnalyticsRepo(db)
	runner := postgres.NewQueryRunner(db)

	// Initialize SQL generation providers
	sqlgen.RegisterProvider("vanna", func(pc *config.SQLGenProviderConfig) (port.SQLGenerator, error) {
		return vanna.NewClient(pc), nil
	})
	sqlgen.RegisterProvider("openai", func(pc *config.SQLGenProviderConfig) (port.SQLGenerator, error) {
		return openai.NewGenerator(pc), nil
	})

	generator, err := buildGenerator(&cfg.SQLGen)
	if err != nil {
		return fmt.Errorf("failed to initialize sql generation: %w", err)
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo)
	chatSvc := service.NewChatService(generator, runner)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	chatH := handler.NewChatHandler(chatSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, invoiceH, analyticsH, chatH, healthH)

	log.Info().Str("port", cfg.Server.Port).Str("environment", cfg.Server.Environment).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildGenerator wires the primary provider, wrapped in a fallback chain
// when a secondary provider is configured.
func buildGenerator(cfg *config.SQLGenConfig) (port.SQLGenerator, error) {
	primary, err := sqlgen.NewGenerator(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := sqlgen.NewGenerator(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return sqlgen.NewFallbackGenerator(
		[]port.SQLGenerator{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
