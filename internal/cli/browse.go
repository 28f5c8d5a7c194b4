// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-reader/internal/catalog"
)

func newBrowseCmd() *cobra.Command {
	var (
		category string
		search   string
		pages    int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List the catalog",
		Long: `List the catalog for a category tab and an optional search term.

Each extra page simulates the infinite-scroll sentinel reaching the viewport.

Examples:
  reader browse
  reader browse --type manhwa
  reader browse --search "one piece"
  reader browse --pages 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store := catalog.NewStore(app.api, app.notifier, app.logger, app.cfg.PageSize)
			defer store.Close()
			view := catalog.NewView(store, app.notifier)
			defer view.Close()

			if category != "" {
				view.SetFilter(ctx, category)
			}
			if search != "" {
				view.SetSearch(ctx, search)
			}
			if category == "" && search == "" {
				view.Start(ctx)
			}

			for page := 1; page < pages; page++ {
				if !view.SentinelVisible(ctx) {
					break
				}
			}

			printTabs(app.out, view.Tabs())
			cards := view.Cards()
			if len(cards) == 0 {
				fmt.Fprintln(app.out, color.New(color.Faint).Sprint(view.EmptyMessage()))
				return nil
			}
			for _, card := range cards {
				printCard(app.out, card)
			}
			if store.State().HasMore {
				fmt.Fprintln(app.out, color.New(color.Faint).Sprint("… more available, use --pages"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "type", "", "Category tab (all, manga, manhwa, anime, novel, manhua)")
	cmd.Flags().StringVar(&search, "search", "", "Search title, author or genre")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	return cmd
}

func printTabs(out io.Writer, tabs []catalog.Tab) {
	labels := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Active {
			labels = append(labels, color.New(color.FgHiYellow, color.Bold).Sprintf("[%s]", tab.Label))
			continue
		}
		labels = append(labels, " "+tab.Label+" ")
	}
	fmt.Fprintln(out, strings.Join(labels, " "))
	fmt.Fprintln(out)
}

func printCard(out io.Writer, card catalog.Card) {
	line := color.New(color.Bold).Sprint(card.Title)
	line += " " + color.CyanString(strings.ToUpper(card.Category))
	if card.Rating != "" {
		line += " " + color.YellowString("★ "+card.Rating)
	}
	if card.Chapters != "" {
		line += " " + color.New(color.Faint).Sprint(card.Chapters)
	}
	fmt.Fprintf(out, "%-4s %s\n", card.ID, line)

	var meta []string
	if card.Author != "" {
		meta = append(meta, card.Author)
	}
	if len(card.Genres) > 0 {
		genres := strings.Join(card.Genres, ", ")
		if card.Overflow != "" {
			genres += " " + card.Overflow
		}
		meta = append(meta, genres)
	}
	if len(meta) > 0 {
		fmt.Fprintf(out, "     %s\n", color.New(color.Faint).Sprint(strings.Join(meta, " · ")))
	}
}
