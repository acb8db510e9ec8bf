package commands

import (
	"github.com/spf13/cobra"

	"github.com/adityapatri279312/excel-data-analyzer/internal/config"
	"github.com/adityapatri279312/excel-data-analyzer/internal/logging"
	"github.com/adityapatri279312/excel-data-analyzer/ui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview a generated report bundle over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging)

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}

	return ui.NewServer(outDir, log).Start(port)
}
