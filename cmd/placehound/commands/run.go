package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/placehound/placehound/internal/crawler"
	"github.com/placehound/placehound/internal/enrich"
	"github.com/placehound/placehound/internal/logger"
	"github.com/placehound/placehound/internal/output"
	"github.com/placehound/placehound/internal/scraper"
	"github.com/placehound/placehound/pkg/record"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run queries and export the extracted listings",
	Long: `Run one or more map searches and export every discovered listing.

Each query gets its own output file named after the query, so
"Dentist Austin TX" lands in dentist_austin_tx.json. Without an
output directory, all records go to stdout in one document.

Examples:
  # One query to stdout
  placehound run -q "dentist Austin TX"

  # Per-query CSV files
  placehound run -q "bakery Denver CO" -q "bakery Boulder CO" \
      -o ./exports --format csv

  # Pull emails and social links from each business's website
  placehound run -q "roofer Phoenix AZ" --enrich-website

  # Add a model-written summary per business
  placehound run -q "roofer Phoenix AZ" --enrich-website \
      --enrich-llm anthropic`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()

	flags.StringSliceP("query", "q", nil, "search query (can be repeated)")

	// Output settings
	flags.StringP("output-dir", "o", "", "directory for per-query output files (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, csv, xlsx, yaml")
	flags.Bool("all-formats", false, "write every supported format per query")

	// Browser settings
	flags.Bool("headless", true, "run the browser headless (use --headless=false to watch)")
	flags.String("user-agent", "", "override the browser user agent")
	flags.Duration("op-timeout", 10*time.Second, "timeout for individual browser operations")

	// Discovery tuning
	flags.Int("scroll-px", 1500, "vertical pixels per feed scroll")
	flags.Duration("scroll-pause", 1500*time.Millisecond, "settle time between feed scrolls")
	flags.Int("stable-scans", 6, "scrolls with no new listings before discovery stops")
	flags.Int("max-scrolls", 500, "hard cap on feed scrolls per query")
	flags.Int("max-results", 0, "stop discovery after this many listings per query (0=unlimited)")
	flags.Duration("discovery-timeout", 30*time.Second, "wait for the results feed to render")
	flags.Duration("detail-timeout", 15*time.Second, "wait for a listing's detail view to render")
	flags.Duration("delay", 0, "pause between listing fetches within a query")

	// Enrichment
	flags.Bool("enrich-website", false, "visit each business website for emails and social links")
	flags.String("max-page-size", "2MB", "max website page size for enrichment (e.g. 500KB, 2MB)")
	flags.String("enrich-llm", "", "write an about_summary per business: anthropic, openai")
	flags.StringP("model", "m", "", "model name for --enrich-llm (provider-specific)")
	flags.StringP("api-key", "k", "", "API key for --enrich-llm (or use env var)")

	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
}

func runRun(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	queries, _ := cmd.Flags().GetStringSlice("query")
	if len(queries) == 0 {
		return cmd.Help()
	}

	formats, err := resolveFormats(cmd)
	if err != nil {
		return err
	}

	cfg := crawler.DefaultConfig()
	cfg.ScrollPixels, _ = cmd.Flags().GetInt("scroll-px")
	cfg.ScrollPause, _ = cmd.Flags().GetDuration("scroll-pause")
	cfg.StableScans, _ = cmd.Flags().GetInt("stable-scans")
	cfg.MaxScrolls, _ = cmd.Flags().GetInt("max-scrolls")
	cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	cfg.DiscoveryTimeout, _ = cmd.Flags().GetDuration("discovery-timeout")
	cfg.DetailTimeout, _ = cmd.Flags().GetDuration("detail-timeout")
	cfg.FetchDelay, _ = cmd.Flags().GetDuration("delay")

	enricher, err := buildEnricher(cmd)
	if err != nil {
		return err
	}

	headless, _ := cmd.Flags().GetBool("headless")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	opTimeout, _ := cmd.Flags().GetDuration("op-timeout")

	surfaceCfg := scraper.DefaultConfig()
	surfaceCfg.Headless = headless
	surfaceCfg.OpTimeout = opTimeout
	if userAgent != "" {
		surfaceCfg.UserAgent = userAgent
	}

	surface, err := scraper.NewChrome(surfaceCfg)
	if err != nil {
		logger.Error("failed to start browser", "error", err)
		return err
	}
	defer func() { _ = surface.Close() }()

	c, err := crawler.New(surface, cfg)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	logger.Info("starting run", "queries", len(queries))
	set, outcomes, runErr := c.Run(ctx, queries)
	if runErr != nil {
		// Interrupted or lost the session: export whatever completed.
		logger.Warn("run stopped early, exporting what completed", "error", runErr)
	}

	records := set.Records()
	if enricher != nil && ctx.Err() == nil {
		logger.Info("enriching records", "count", len(records))
		records = enricher.Apply(ctx, records)
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if err := writeResults(records, queries, outDir, formats); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}

	summary := record.Summarize(outcomes, set)
	logger.Info("run complete",
		"queries", summary.Queries,
		"discovered", summary.Discovered,
		"fetched", summary.Fetched,
		"failed", summary.Failed,
		"unique", summary.Unique)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func resolveFormats(cmd *cobra.Command) ([]output.Format, error) {
	if all, _ := cmd.Flags().GetBool("all-formats"); all {
		return output.Formats(), nil
	}
	formatStr, _ := cmd.Flags().GetString("format")
	f, err := output.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	return []output.Format{f}, nil
}

func buildEnricher(cmd *cobra.Command) (*enrich.Enricher, error) {
	var opts []enrich.Option

	if hunt, _ := cmd.Flags().GetBool("enrich-website"); hunt {
		cfg := enrich.DefaultWebsiteConfig()
		if sizeStr, _ := cmd.Flags().GetString("max-page-size"); strings.TrimSpace(sizeStr) != "" {
			bytes, err := humanize.ParseBytes(sizeStr)
			if err != nil {
				return nil, fmt.Errorf("invalid max-page-size %q: %w", sizeStr, err)
			}
			cfg.MaxBodySize = int(bytes)
		}
		opts = append(opts, enrich.WithWebsiteHunter(enrich.NewWebsiteHunter(cfg)))
	}

	if provider, _ := cmd.Flags().GetString("enrich-llm"); provider != "" {
		summarizer, err := enrich.NewSummarizer(enrich.ProviderConfig{
			Provider: provider,
			APIKey:   viper.GetString("api_key"),
			Model:    viper.GetString("model"),
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("summarizer ready", "provider", summarizer.Name(), "model", summarizer.Model())
		opts = append(opts, enrich.WithSummarizer(summarizer))
	}

	if len(opts) == 0 {
		return nil, nil
	}
	return enrich.New(opts...), nil
}

// writeResults exports records. With an output directory each query gets
// its own file per format; without one, everything goes to stdout in the
// first format.
func writeResults(records []record.Business, queries []string, outDir string, formats []output.Format) error {
	if outDir == "" {
		w, err := output.NewWriter(os.Stdout, formats[0])
		if err != nil {
			return err
		}
		if err := w.WriteAll(records); err != nil {
			return err
		}
		return w.Close()
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	byQuery := make(map[string][]record.Business)
	for _, b := range records {
		byQuery[b.QuerySource] = append(byQuery[b.QuerySource], b)
	}

	for _, query := range queries {
		stem := output.FileStem(query)
		for _, format := range formats {
			path := filepath.Join(outDir, stem+"."+string(format))
			if err := writeFile(path, format, byQuery[query]); err != nil {
				return err
			}
			logger.Info("wrote output", "path", path, "records", len(byQuery[query]))
		}
	}
	return nil
}

func writeFile(path string, format output.Format, records []record.Business) error {
	f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output directory
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w, err := output.NewWriter(f, format)
	if err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return w.Close()
}
