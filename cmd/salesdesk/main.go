package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/salesdesk/internal/client/cli"
	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

var (
	cfg *config.Config
	log logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "SalesDesk Manager console",
	Long: `SalesDesk Manager console for the sales-team backend.

Run without arguments to start the interactive shell. Settings come from
defaults, the environment (SALESDESK_*, optionally from -e .env), a JSON
file (-c config.json) and the flags -a -d -t -i -l, later sources winning.`,
	SilenceUsage:       true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Args:               cobra.ArbitraryArgs,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err = logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if s, ok := log.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *cli.App) error {
			return app.Run(ctx)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import prospects from an .xlsx or .csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *cli.App) error {
			return app.Import(ctx, args[0])
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *cli.App) error {
			app.Restore(ctx)
			return app.Logout(ctx)
		})
	},
}

func init() {
	// Registered so cobra knows these flags take values. config.Load reads
	// them from os.Args itself.
	pf := rootCmd.PersistentFlags()
	pf.StringP("backend", "a", "", "backend base URL")
	pf.StringP("db", "d", "", "local session database path")
	pf.IntP("timeout", "t", 0, "request timeout in seconds")
	pf.IntP("interval", "i", 0, "session check interval in seconds")
	pf.StringP("log", "l", "", "log backend (slog|zap)")
	pf.StringP("config", "c", "", "JSON config file")
	pf.StringP("env", "e", "", ".env file")

	rootCmd.AddCommand(importCmd, logoutCmd)
}

func withApp(ctx context.Context, fn func(context.Context, *cli.App) error) error {
	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
