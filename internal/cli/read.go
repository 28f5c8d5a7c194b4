// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-reader/internal/reader"
)

func newReadCmd() *cobra.Command {
	var (
		chapterID string
		next      int
		loadAll   bool
	)

	cmd := &cobra.Command{
		Use:   "read <content-id>",
		Short: "Open the chapter reader",
		Long: `Open the chapter reader for a content item.

Pages are revealed one at a time as their images load; --load-all simulates
every image of the window loading in order. --next advances chapters.

Examples:
  reader read 1
  reader read 1 --chapter 1-ch-5 --load-all
  reader read 2 --next 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session := reader.NewSession(app.api, app.notifier, app.logger)
			defer session.Close()

			if err := session.Init(ctx, args[0], chapterID); err != nil {
				if errors.Is(err, reader.ErrNoChapters) {
					return fmt.Errorf("content %s has no chapters", args[0])
				}
				return err
			}

			for range next {
				advanced, err := session.Advance(ctx)
				if err != nil {
					return err
				}
				if !advanced {
					break
				}
			}

			if loadAll {
				revealAll(session)
			}

			printSession(session.Snapshot())
			return nil
		},
	}

	cmd.Flags().StringVar(&chapterID, "chapter", "", "Chapter id to start from")
	cmd.Flags().IntVar(&next, "next", 0, "Advance this many chapters")
	cmd.Flags().BoolVar(&loadAll, "load-all", false, "Simulate every image of the window loading")
	return cmd
}

// revealAll reports each frontier image as loaded until nothing more reveals.
func revealAll(session *reader.Session) {
	for {
		snapshot := session.Snapshot()
		loaded := false
		for chapterIdx, entry := range snapshot.Entries {
			for pageIdx, page := range entry.Pages {
				if page.Global == snapshot.Revealed && session.ImageLoaded(chapterIdx, pageIdx) {
					loaded = true
				}
			}
		}
		if !loaded {
			return
		}
	}
}

func printSession(snapshot reader.Snapshot) {
	current := snapshot.CurrentChapter()
	if current == nil {
		return
	}
	fmt.Fprintf(app.out, "%s  (%d chapters)\n", color.New(color.Bold).Sprint(current.Title), snapshot.TotalChapters)

	prev, nextLabel := "Prev", "Next"
	if !snapshot.CanPrev {
		prev = color.New(color.Faint).Sprint(prev)
	}
	if !snapshot.CanNext {
		nextLabel = color.New(color.Faint).Sprint(nextLabel)
	}
	fmt.Fprintf(app.out, "< %s | %s >\n\n", prev, nextLabel)

	for _, item := range snapshot.Selector {
		marker := "  "
		if item.Current {
			marker = color.HiYellowString("✓ ")
		}
		fmt.Fprintln(app.out, marker+item.Label)
	}
	fmt.Fprintln(app.out)

	for index, entry := range snapshot.Entries {
		header := fmt.Sprintf("Chapter %d", entry.Chapter.Number)
		if entry.Locked {
			header += " " + color.RedString("🔒 Chapter Locked")
		}
		if index == snapshot.Current {
			header = color.New(color.Bold).Sprint(header)
		}
		fmt.Fprintln(app.out, header)

		if len(entry.Pages) == 0 {
			fmt.Fprintln(app.out, color.New(color.Faint).Sprint("  no pages"))
			continue
		}
		for _, page := range entry.Pages {
			if page.Revealed {
				fmt.Fprintf(app.out, "  %3d %s\n", page.Page.PageNumber, page.Page.ImageURL)
				continue
			}
			fmt.Fprintf(app.out, "  %3d %s\n", page.Page.PageNumber, color.New(color.Faint).Sprint("loading…"))
		}
	}
}
