package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edgarhound/edgarhound/config"
	"github.com/edgarhound/edgarhound/edgar"
	"github.com/edgarhound/edgarhound/ops"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *edgar.Client
	operations *ops.Operations
	formatter  *ops.ConsoleFormatter

	buildVersion = "dev"
	buildTime    = "unknown"

	// Shared command flags
	filterExpr string
	preset     string
	limit      int
	fetchAll   bool
)

// SetVersion records build metadata injected via ldflags.
func SetVersion(version, built string) {
	buildVersion = version
	buildTime = built
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "edgarhound",
	Short: "Query SEC filings, insider trades, and 13F holdings",
	Long: `edgarhound is a CLI for the edgarhound financial-data API. It lists and
filters SEC filings, insider transactions, and institutional holdings, and
looks up company profiles by CIK.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create API client
	opts := []edgar.Option{
		edgar.WithLogger(logger),
		edgar.WithTimeout(time.Duration(cfg.API.TimeoutMS) * time.Millisecond),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, edgar.WithBaseURL(cfg.API.BaseURL))
	}

	client, err = edgar.NewClient(cfg.API.Token, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	operations = ops.NewOperations(client, logger)
	formatter = ops.NewConsoleFormatter()

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API connection",
	Long:  `Issue a minimal request to verify the configured API token and endpoint.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = edgar.DefaultBaseURL
	}
	fmt.Printf("Testing connection to %s...\n", baseURL)

	ctx := context.Background()
	page, err := client.Filings.List(ctx, edgar.FilingListParams{Limit: 1})
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	if len(page.Items) > 0 {
		latest := page.Items[0]
		fmt.Printf("- Latest filing: %s %s (%s)\n", latest.FormType, latest.CompanyName, latest.FiledAt.Format("2006-01-02"))
	}

	return nil
}

// versionCmd reports the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No API access needed; skip app initialization.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edgarhound %s (library %s, built %s)\n", buildVersion, edgar.Version, buildTime)
	},
}
