// Package main implements the cursor-recap CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ganot/cursor-recap/internal/config"
	"github.com/ganot/cursor-recap/internal/domain/conversation"
	"github.com/ganot/cursor-recap/internal/render"
	"github.com/ganot/cursor-recap/internal/sqlite"
	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagDate   string
	flagFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cursor-recap",
	Short: "Extract a day's Cursor conversations from the local state store",
	Long: `cursor-recap scans Cursor's local state database and emits normalized
summaries of every conversation created or updated on a given day, as a JSON
array for downstream summarizers or as a readable text digest.

Examples:
  # Today's conversations as JSON
  cursor-recap

  # A specific day, human-readable
  cursor-recap --date 2026-03-14 --format summary

  # Against a copied database
  cursor-recap --db /backups/state.vscdb`,
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to Cursor's state.vscdb (default: platform location)")
	rootCmd.Flags().StringVar(&flagDate, "date", "", "target date in YYYY-MM-DD form (default: today)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "json", "output format: json or summary")
	rootCmd.AddCommand(serveCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	day, err := parseTargetDate(flagDate)
	if err != nil {
		return err
	}
	if flagFormat != "json" && flagFormat != "summary" {
		return fmt.Errorf("invalid format %q: expected json or summary", flagFormat)
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	svc := conversation.NewService(sqlite.StateOpener{Path: cfg.Store.Path}, logger)
	summaries := svc.Extract(cmd.Context(), day)

	if flagFormat == "summary" {
		return render.Text(os.Stdout, summaries)
	}
	return render.JSON(os.Stdout, summaries)
}

// setup loads configuration and builds the logger. Logs go to stderr so
// stdout stays clean for the requested payload.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config error: %w", err)
	}
	if flagDB != "" {
		cfg.Store.Path = flagDB
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return cfg, logger, nil
}

// parseTargetDate interprets an optional YYYY-MM-DD argument in local time.
// An empty value means today.
func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", value)
	}
	return day, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
