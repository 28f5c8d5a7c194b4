// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-reader/internal/detail"
)

func newDetailCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "detail <content-id>",
		Short: "Show a content page and its chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := detail.NewView(app.api, app.notifier, app.logger)
			model := view.Load(cmd.Context(), args[0])
			if model.Err != "" {
				return fmt.Errorf("content %s: %s", args[0], model.Err)
			}

			item := model.Item
			fmt.Fprintln(app.out, color.New(color.Bold).Sprint(item.Title))
			if item.Author != "" {
				fmt.Fprintf(app.out, "by %s\n", item.Author)
			}
			if model.Rating != "" {
				fmt.Fprintln(app.out, color.YellowString("★ "+model.Rating))
			}
			badges := append([]string{strings.ToUpper(string(item.Category)), string(item.Status)}, item.Genres...)
			fmt.Fprintln(app.out, color.CyanString(strings.Join(badges, " | ")))

			if item.Description != "" {
				fmt.Fprintln(app.out)
				fmt.Fprintln(app.out, item.Description)
			}

			fmt.Fprintln(app.out)
			for _, fact := range model.Facts {
				fmt.Fprintf(app.out, "%-13s %s\n", fact.Label, fact.Value)
			}

			fmt.Fprintln(app.out)
			printLink(model.Start)
			printLink(model.ReadFirst)
			printLink(model.ReadLast)

			if len(model.Rows) == 0 {
				fmt.Fprintln(app.out, color.New(color.Faint).Sprint("No chapters available for this content yet."))
				return nil
			}

			fmt.Fprintln(app.out)
			shown := model.Rows
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			for _, row := range shown {
				fmt.Fprintf(app.out, "%-8s %-16s %s\n", row.Label, row.Title, color.New(color.Faint).Sprint(row.Href))
			}
			if len(shown) < len(model.Rows) {
				fmt.Fprintf(app.out, "… %d more\n", len(model.Rows)-len(shown))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum chapters to list (0 = all)")
	return cmd
}

func printLink(link detail.Link) {
	if link.Href == "" {
		fmt.Fprintln(app.out, color.New(color.Faint).Sprintf("[%s]", link.Label))
		return
	}
	fmt.Fprintf(app.out, "%s %s\n", color.GreenString("[%s]", link.Label), link.Href)
}
