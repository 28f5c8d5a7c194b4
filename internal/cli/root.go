// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli is the terminal front end of the reader.

It drives the catalog, detail and reader view models against the mock data
API and prints their render-ready snapshots.

Commands:

  - browse: catalog tabs, search and infinite scroll.
  - detail: a content page with its chapter list.
  - read: the progressive chapter reader.
  - request: the "request content" form.
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-reader/internal/client"
	"github.com/taibuivan/yomira-reader/internal/platform/config"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
)

// env is the wiring shared by every command.
type env struct {
	cfg      *config.ClientConfig
	logger   *slog.Logger
	api      *client.Client
	notifier notice.Notifier
	out      io.Writer
}

var (
	flagNoColor bool
	flagDebug   bool
	flagAPIURL  string

	app = &env{out: os.Stdout}
)

var rootCmd = &cobra.Command{
	Use:   "reader",
	Short: "Browse and read manga, manhwa, anime and novels from the terminal",
	Long: `reader is a terminal front end for the Yomira mock data API.

It shows the catalog with category tabs and search, content detail pages
with their chapter lists, and a progressive chapter reader that reveals one
page at a time.

Configuration comes from the environment (API_URL, CATALOG_PAGE_SIZE,
HTTP_TIMEOUT, DEBUG).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagNoColor || !isTTY() {
			color.NoColor = true
		}

		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagAPIURL != "" {
			cfg.APIURL = flagAPIURL
		}
		if flagDebug {
			cfg.Debug = true
		}

		level := slog.LevelWarn
		if cfg.Debug {
			level = slog.LevelDebug
		}
		app.cfg = cfg
		app.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
			With(slog.String("app", constants.AppName+"-cli"))
		app.api = client.New(cfg.APIURL, cfg.HTTPTimeout, app.logger)
		app.notifier = notice.Multi{notice.NewLogNotifier(app.logger), &consoleNotifier{out: os.Stderr}}
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (default: $API_URL)")

	rootCmd.AddCommand(
		newBrowseCmd(),
		newDetailCmd(),
		newReadCmd(),
		newRequestCmd(),
	)
}

// # Notices

// consoleNotifier prints notices as toast-like lines.
type consoleNotifier struct {
	out io.Writer
}

// Notify implements [notice.Notifier].
func (n *consoleNotifier) Notify(_ context.Context, item notice.Notice) {
	mark := color.GreenString("✓")
	if item.Variant == notice.VariantDestructive {
		mark = color.RedString("✗")
	}
	if item.Description == "" {
		fmt.Fprintln(n.out, mark, color.New(color.Bold).Sprint(item.Title))
		return
	}
	fmt.Fprintln(n.out, mark, color.New(color.Bold).Sprint(item.Title)+":", item.Description)
}

// # Helpers

// isTTY reports whether stdout is a terminal.
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
