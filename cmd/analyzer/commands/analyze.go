package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adityapatri279312/excel-data-analyzer/adapters/excel"
	"github.com/adityapatri279312/excel-data-analyzer/adapters/markdown"
	"github.com/adityapatri279312/excel-data-analyzer/adapters/plot"
	"github.com/adityapatri279312/excel-data-analyzer/adapters/postgres"
	"github.com/adityapatri279312/excel-data-analyzer/internal/config"
	"github.com/adityapatri279312/excel-data-analyzer/internal/engine"
	"github.com/adityapatri279312/excel-data-analyzer/internal/logging"
	"github.com/adityapatri279312/excel-data-analyzer/ports"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input-file>",
	Short: "Analyze a dataset and generate the report bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging)

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	if err := os.MkdirAll(filepath.Join(outDir, engine.ChartsDirname), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline := engine.NewPipeline(
		excel.NewDataReader(),
		plot.NewRenderer(plot.DefaultStyle()),
		markdown.NewWriter(),
		openLedger(ctx, cfg, log),
		log,
	)

	result, err := pipeline.Run(ctx, args[0], outDir)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return err
	}

	fmt.Printf("Analysis complete! Report saved to %s\n", result.ReportPath)
	return nil
}

// openLedger connects the optional run ledger. Any failure downgrades to
// running without a ledger; report generation never depends on it.
func openLedger(ctx context.Context, cfg *config.Config, log zerolog.Logger) ports.RunLedgerPort {
	if cfg.Database.URL == "" {
		return nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
	if err != nil {
		log.Warn().Err(err).Msg("run ledger unavailable, continuing without it")
		return nil
	}

	ledger := postgres.NewRunLedger(db)
	if err := ledger.EnsureSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("run ledger schema setup failed, continuing without it")
		return nil
	}
	return ledger
}
