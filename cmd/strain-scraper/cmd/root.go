// Package cmd provides the CLI commands for the strain scraper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfcharron/sqdc-strain-scraper/internal/config"
	"github.com/jfcharron/sqdc-strain-scraper/pkg/logger"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "strain-scraper",
	Short: "Build a priced, in-stock SQDC strain catalog",
	Long: `strain-scraper drives a browser session through the SQDC age gate,
queries the site's inventory and pricing APIs with the captured session,
and reconciles inventory, prices and the paginated product listing into a
single catalog of fully priced, in-stock strains.

Examples:
  strain-scraper run
  strain-scraper run --store 42 --output out/strains
  strain-scraper serve --port 8080`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger.New(cfg.Logging.Level, cfg.Logging.Format)
}
