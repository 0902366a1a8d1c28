// NewsPulse — headline sentiment dashboard.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maheshkv/newspulse/api"
	"github.com/maheshkv/newspulse/internal/config"
	"github.com/maheshkv/newspulse/internal/infra"
	"github.com/maheshkv/newspulse/internal/pipeline"
	"github.com/maheshkv/newspulse/internal/providers"
	"github.com/maheshkv/newspulse/internal/report"
	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
	"github.com/maheshkv/newspulse/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set in PersistentPreRunE.
var (
	cfg *config.Config
	log *zap.SugaredLogger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newspulse",
	Short: "NewsPulse — headline sentiment dashboard",
	Long: `NewsPulse fetches the latest headlines for a country and category,
scores each one for sentiment polarity, and serves a filterable
dashboard with a pie-chart breakdown and PDF export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional; real environment variables win.
		godotenv.Load() //nolint:errcheck

		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		log, err = infra.NewLogger(level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(statusCmd)
}

// buildPipeline wires the registry, session cache, and pipeline.
func buildPipeline() (*pipeline.Pipeline, error) {
	reg, err := providers.BuildRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider registry: %w", err)
	}
	return pipeline.New(reg, pipeline.NewSessionCache(), log), nil
}

// selectorFromFlags reads the --country / --category / --provider flags.
func selectorFromFlags(cmd *cobra.Command) (models.Selector, error) {
	country, _ := cmd.Flags().GetString("country")
	category, _ := cmd.Flags().GetString("category")
	prov, _ := cmd.Flags().GetString("provider")

	sel := models.Selector{
		Country:  models.Country(country),
		Category: models.Category(category),
		Provider: prov,
	}
	if err := sel.Validate(); err != nil {
		return models.Selector{}, err
	}
	return sel, nil
}

func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().String("country", "USA", "country selection (USA, India)")
	cmd.Flags().String("category", "general", "news category")
	cmd.Flags().String("provider", "", "force a specific provider (guardian, newsdata, rss)")
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("NewsPulse %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server and dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipe, err := buildPipeline()
		if err != nil {
			return err
		}

		// Warm the cache for the default selections in the background
		// so the first dashboard load has a fallback.
		if warm, _ := cmd.Flags().GetBool("prefetch"); warm {
			go pipe.Prefetch(context.Background(), []models.Selector{
				{Country: models.CountryUSA, Category: models.CategoryGeneral},
				{Country: models.CountryIndia, Category: models.CategoryGeneral},
			})
		}

		srv := api.NewServer(cfg, pipe, pipe.Registry(), log)
		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			srv.SetServeUI(false)
		}

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().Bool("prefetch", true, "warm the session cache for the default selections on startup")
	serveCmd.Flags().Bool("no-ui", false, "disable the embedded web UI")
}

// --- Fetch Command ---

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and score headlines for a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags(cmd)
		if err != nil {
			return err
		}

		pipe, err := buildPipeline()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res, err := pipe.Fetch(ctx, sel)
		if err != nil {
			return err
		}
		if res.Unavailable() {
			return fmt.Errorf("no data available for %s / %s", sel.Country, sel.Category)
		}

		summary := sentiment.Summarize(res.Records)
		fmt.Printf("%s / %s — %d headlines via %s (%s)\n",
			sel.Country, sel.Category, len(res.Records), res.Provider, res.Provenance)
		fmt.Printf("Positive: %d  Neutral: %d  Negative: %d\n\n",
			summary.Positive, summary.Neutral, summary.Negative)

		for _, r := range res.Records {
			bucket, _ := r.Bucket()
			fmt.Printf("[%-8s] %s\n", bucket, r.Title)
			fmt.Printf("           %s | %s\n", r.Source, utils.FormatDate(r.PublishedAt))
		}
		return nil
	},
}

func init() {
	addSelectorFlags(fetchCmd)
}

// --- Export Command ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a selection's headlines to a PDF report",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags(cmd)
		if err != nil {
			return err
		}

		pipe, err := buildPipeline()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res, err := pipe.Fetch(ctx, sel)
		if err != nil {
			return err
		}
		if res.Unavailable() {
			return fmt.Errorf("cannot export: no data for %s / %s", sel.Country, sel.Category)
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}

		chartPath := filepath.Join(outDir, cfg.Export.ChartFile)
		if err := report.WriteChartPNG(chartPath, sentiment.Summarize(res.Records)); err != nil {
			log.Warnw("chart export failed", "error", err)
			chartPath = ""
		}

		outPath := filepath.Join(outDir, report.DefaultFilename(sel))
		if err := report.WritePDF(res.Records, sel, chartPath, outPath); err != nil {
			return err
		}

		fmt.Printf("Exported %d headlines to %s\n", len(res.Records), outPath)
		return nil
	},
}

func init() {
	addSelectorFlags(exportCmd)
	exportCmd.Flags().String("out", "", "output directory (default: export.output_dir from config)")
}

// --- Sources Command ---

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List providers and check their connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := providers.BuildRegistry(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()

		type pingResult struct {
			name string
			err  error
		}
		all := reg.All()
		results := make([]pingResult, len(all))

		g, ctx := errgroup.WithContext(ctx)
		for i, p := range all {
			i, p := i, p
			g.Go(func() error {
				results[i] = pingResult{name: p.Info().DisplayName, err: p.Ping(ctx)}
				return nil
			})
		}
		g.Wait() //nolint:errcheck

		for _, r := range results {
			status := "✅ reachable"
			if r.err != nil {
				status = fmt.Sprintf("❌ %v", r.err)
			}
			fmt.Printf("  %-20s %s\n", r.name+":", status)
		}
		return nil
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  NewsPulse — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Printf("  Time (UTC):  %s\n", utils.FormatDate(utils.NowUTC()))
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    API Server:  %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Printf("    Export Dir:  %s\n", cfg.Export.OutputDir)
		fmt.Printf("    RSS Feeds:   enabled=%v (%d configured)\n",
			cfg.Providers.RSS.Enabled, len(cfg.Providers.RSS.Feeds))
		fmt.Println()

		fmt.Println("  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "❌ not set"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-20s %s\n", k.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
