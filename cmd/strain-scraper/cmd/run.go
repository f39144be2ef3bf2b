package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jfcharron/sqdc-strain-scraper/internal/browser"
	"github.com/jfcharron/sqdc-strain-scraper/internal/config"
	"github.com/jfcharron/sqdc-strain-scraper/internal/database"
	"github.com/jfcharron/sqdc-strain-scraper/internal/events"
	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
	"github.com/jfcharron/sqdc-strain-scraper/internal/scraper"
	"github.com/jfcharron/sqdc-strain-scraper/internal/session"
	"github.com/jfcharron/sqdc-strain-scraper/internal/sqdc"
	"github.com/jfcharron/sqdc-strain-scraper/internal/storage"
)

var (
	runStoreID   int
	runOutputDir string
	runHeadless  bool
	runSpecies   []string
	runPotency   string
	runFormat    string
	runNoSave    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape one store's catalog and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyRunFlags(cmd)
		if err := cfg.ValidateRun(); err != nil {
			return err
		}
		return runScrape(cmd.Context())
	},
}

func init() {
	runCmd.Flags().IntVar(&runStoreID, "store", 0, "store id to scrape (default STORE_ID)")
	runCmd.Flags().StringVar(&runOutputDir, "output", "", "snapshot output directory (default OUTPUT_DIR)")
	runCmd.Flags().BoolVar(&runHeadless, "headless", true, "run the browser headless")
	runCmd.Flags().StringSliceVar(&runSpecies, "species", []string{"Indica", "Sativa"}, "dominant species filter")
	runCmd.Flags().StringVar(&runPotency, "potency", "3", "potency tier filter (1-3)")
	runCmd.Flags().StringVar(&runFormat, "format", "3.5 g", "packaging format filter")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "skip writing snapshot files")
}

func applyRunFlags(cmd *cobra.Command) {
	if runStoreID > 0 {
		cfg.Store.ID = runStoreID
	}
	if runOutputDir != "" {
		cfg.Output.Dir = runOutputDir
	}
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = runHeadless
	}
}

func runFilters() sqdc.Filters {
	return sqdc.Filters{
		{Name: sqdc.FilterInStock, Values: []string{"in store"}},
		{Name: sqdc.FilterDominantSpecies, Values: runSpecies},
		{Name: sqdc.FilterPotency, Values: []string{runPotency}},
		{Name: sqdc.FilterFormat, Values: []string{runFormat}},
	}
}

func runScrape(parent context.Context) error {
	logger := slog.Default()

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b, err := browser.New(&browser.Options{
		Headless:       cfg.Browser.Headless,
		Timeout:        cfg.Browser.Timeout,
		UserAgent:      browser.DefaultOptions().UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		TimezoneID:     cfg.Browser.TimezoneID,
		Locale:         cfg.Browser.Locale,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer b.Close()

	agent := scraper.NewAgent(b, session.DateOfBirth{
		Day:   cfg.DateOfBirth.Day,
		Month: cfg.DateOfBirth.Month,
		Year:  cfg.DateOfBirth.Year,
	})

	strains, err := agent.Run(ctx, cfg.Store.ID, runFilters())
	if err != nil {
		return err
	}

	sort.Slice(strains, func(i, j int) bool {
		return *strains[i].DisplayPrice < *strains[j].DisplayPrice
	})
	printStrains(strains)

	if !runNoSave {
		store, err := storage.NewSnapshotStore(cfg.Output.Dir)
		if err != nil {
			return err
		}
		saved, err := store.SaveAll(strains)
		if err != nil {
			return err
		}
		logger.Info("snapshots written", "dir", cfg.Output.Dir, "count", saved)
	}

	if cfg.Database.Enabled {
		if err := persistStrains(ctx, cfg, strains); err != nil {
			return err
		}
	}

	if cfg.Redis.Enabled {
		if err := publishStrains(ctx, cfg, strains); err != nil {
			return err
		}
	}

	return nil
}

func persistStrains(ctx context.Context, cfg *config.Config, strains []*models.Strain) error {
	db, err := database.New(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := db.UpsertStrains(ctx, cfg.Store.ID, strains); err != nil {
		return err
	}

	slog.Default().Info("catalog persisted", "store_id", cfg.Store.ID, "strains", len(strains))
	return nil
}

func publishStrains(ctx context.Context, cfg *config.Config, strains []*models.Strain) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	publisher := events.NewPublisher(client, cfg.Redis.Stream)
	return publisher.PublishCatalogUpdated(ctx, cfg.Store.ID, strains)
}

func printStrains(strains []*models.Strain) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Price", "Packets", "URL"})
	for _, s := range strains {
		t.AppendRow(table.Row{
			s.Name,
			fmt.Sprintf("CAD $%.2f", *s.DisplayPrice),
			*s.PromisedQuantity,
			s.URL,
		})
	}
	t.AppendFooter(table.Row{"Total", len(strains), "", ""})
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(strains) == 0 {
		fmt.Println("No strains matched the filters.")
	}
}
