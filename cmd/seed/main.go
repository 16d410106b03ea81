package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"spendlens/internal/config"
	"spendlens/internal/ingest"
	"spendlens/internal/logger"
	"spendlens/internal/repository/postgres"
	s3storage "spendlens/internal/storage/s3"
)

var (
	flagInput    string
	flagS3Bucket string
	flagS3Key    string
	flagClear    bool
	flagSeed     int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Ingest an invoice document export into the database",
		Long: `Reads a JSON document export (from a local file or S3), normalizes
every document into vendor, customer, invoice, line-item and payment
records, and writes them to PostgreSQL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd)
		},
	}

	rootCmd.Flags().StringVar(&flagInput, "input", "", "path to a local JSON document export")
	rootCmd.Flags().StringVar(&flagS3Bucket, "s3-bucket", "", "S3 bucket holding the document export")
	rootCmd.Flags().StringVar(&flagS3Key, "s3-key", "", "S3 object key of the document export")
	rootCmd.Flags().BoolVar(&flagClear, "clear", false, "delete all existing records before seeding")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "fix the random seed for reproducible status assignment")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	log := logger.WithComponent("seed")

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	stores := ingest.Stores{
		Vendors:   postgres.NewVendorRepo(db),
		Customers: postgres.NewCustomerRepo(db),
		Invoices:  postgres.NewInvoiceRepo(db),
		LineItems: postgres.NewLineItemRepo(db),
		Payments:  postgres.NewPaymentRepo(db),
	}

	if flagClear {
		log.Info().Msg("clearing existing records")
		// Children before parents, matching the foreign keys.
		if err := stores.Payments.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing payments: %w", err)
		}
		if err := stores.LineItems.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing line items: %w", err)
		}
		if err := stores.Invoices.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing invoices: %w", err)
		}
		if err := stores.Customers.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing customers: %w", err)
		}
		if err := stores.Vendors.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing vendors: %w", err)
		}
	}

	docs, err := source.Load(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("documents", len(docs)).Msg("document export loaded")

	var opts []ingest.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, ingest.WithRand(rand.New(rand.NewSource(flagSeed))))
	}

	normalizer := ingest.NewNormalizer(stores, opts...)
	summary, err := normalizer.Run(ctx, docs)
	if err != nil {
		return fmt.Errorf("ingestion run failed: %w", err)
	}

	log.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("vendors", summary.Vendors).
		Int("customers", summary.Customers).
		Msg("ingestion complete")

	for _, de := range summary.Errors {
		log.Warn().Str("document_id", de.DocumentID).Err(de.Err).Msg("document skipped")
	}

	return nil
}

// buildSource picks the document source from flags, falling back to the
// configured ingest settings.
func buildSource(cfg *config.Config) (ingest.Source, error) {
	bucket := flagS3Bucket
	if bucket == "" {
		bucket = cfg.Ingest.S3Bucket
	}
	key := flagS3Key
	if key == "" {
		key = cfg.Ingest.S3Key
	}
	input := flagInput
	if input == "" {
		input = cfg.Ingest.InputPath
	}

	if flagInput != "" {
		return &ingest.FileSource{Path: flagInput}, nil
	}

	if bucket != "" && key != "" {
		ingestCfg := cfg.Ingest
		ingestCfg.S3Bucket = bucket
		storage, err := s3storage.NewS3Client(&ingestCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		return &ingest.ObjectSource{Storage: storage, Key: key}, nil
	}

	if input != "" {
		return &ingest.FileSource{Path: input}, nil
	}

	return nil, fmt.Errorf("no input configured: pass --input or --s3-bucket/--s3-key")
}
