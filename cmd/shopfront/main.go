package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopfront/cmd/shopfront/shop"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/identity"
)

// Version is stamped at build time.
var Version = "0.3.0"

var (
	// Global flags
	verbose    bool
	configPath string
	fragment   string
	catalogURL string
	logFile    string

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive storefront.
var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "shopfront - a terminal storefront",
	Long: `shopfront is a single-page storefront for the terminal: hash-style
routing over page modules, a product catalog rendered from JSON, a
shopping cart, and an account panel over a pluggable identity service.

Run without arguments to open the storefront. Use --fragment to deep
link into a page, e.g. --fragment about (legacy page-about also works).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; only log there when a file
		// sink was requested.
		if cmd.Name() == "shopfront" && logFile == "" {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logFile != "" {
			zcfg.OutputPaths = []string{logFile}
			zcfg.ErrorOutputPaths = []string{logFile}
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

// serveCmd serves the demo catalog JSON for local development.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo catalog JSON over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		logger.Info("serving catalog",
			zap.String("addr", addr),
			zap.String("path", catalog.Path))
		srv := &http.Server{
			Addr:              addr,
			Handler:           catalog.NewServer(nil, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return srv.ListenAndServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shopfront version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shopfront %s\n", Version)
	},
}

func runStorefront() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if catalogURL != "" {
		cfg.Catalog.BaseURL = catalogURL
	}
	if verbose {
		cfg.Logging.Debug = true
	}

	provider := identity.NewMemory()
	client := catalog.NewClient(cfg.Catalog.BaseURL, logger)

	model := shop.New(cfg, provider, client, logger)
	if fragment != "" {
		model.SetFragment(fragment)
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&fragment, "fragment", "", "initial navigation fragment")
	rootCmd.Flags().StringVar(&catalogURL, "catalog-url", "", "catalog base URL")

	serveCmd.Flags().String("addr", ":8477", "listen address")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
