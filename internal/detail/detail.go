// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package detail is the content detail page view model.

It fetches an item and its chapter roster concurrently. A failed item fetch
puts the page in an error state; a failed chapter fetch only empties the
roster. First and last chapters are derived for the reading shortcuts.
*/
package detail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
	"github.com/taibuivan/yomira-reader/pkg/pointer"
)

// Source fetches an item and its chapters. [*client.Client] satisfies it.
type Source interface {
	GetContent(ctx context.Context, id string) (*content.Item, error)
	ListChapters(ctx context.Context, contentID string) ([]*chapter.Chapter, error)
}

// # Render Models

// Link is a reading shortcut. Href is empty when the link is disabled.
type Link struct {
	Label string
	Href  string
}

// Fact is one row of the details card.
type Fact struct {
	Label string
	Value string
}

// ChapterRow is one entry of the chapter list.
type ChapterRow struct {
	Label string // "Ch n"
	Title string
	Href  string
}

// Model is the render-ready detail page.
type Model struct {
	// Err is the client-facing error message; the rest is empty when set.
	Err string

	Item     *content.Item
	Chapters []*chapter.Chapter
	First    *chapter.Chapter
	Last     *chapter.Chapter

	CanRead   bool
	Start     Link // "Start Reading" or "No Chapters"
	ReadFirst Link
	ReadLast  Link

	Rating string // "%.1f", only when > 0
	Facts  []Fact
	Rows   []ChapterRow
}

// # View

// View loads detail pages.
type View struct {
	source   Source
	notifier notice.Notifier
	logger   *slog.Logger
}

// NewView constructs a detail [View].
func NewView(source Source, notifier notice.Notifier, logger *slog.Logger) *View {
	return &View{source: source, notifier: notifier, logger: logger}
}

/*
Load fetches the item and its chapters concurrently and derives the page.

Returns:
  - Model: Either a ready page or an error state (Err set)
*/
func (view *View) Load(ctx context.Context, id string) Model {
	var (
		item     *content.Item
		chapters []*chapter.Chapter
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		fetched, err := view.source.GetContent(groupCtx, id)
		if err != nil {
			return err
		}
		item = fetched
		return nil
	})

	group.Go(func() error {
		fetched, err := view.source.ListChapters(groupCtx, id)
		if err != nil {
			view.logger.WarnContext(ctx, "detail_chapters_unavailable", slog.String("content_id", id), slog.Any("error", err))
			return nil
		}
		chapters = fetched
		return nil
	})

	if err := group.Wait(); err != nil {
		view.logger.ErrorContext(ctx, "detail_load_failed", slog.String("content_id", id), slog.Any("error", err))
		view.notifier.Notify(ctx, notice.Error("Error Loading Content", err.Error()))
		return Model{Err: err.Error()}
	}

	return build(item, chapters)
}

// # Internal Helpers

func build(item *content.Item, chapters []*chapter.Chapter) Model {
	if chapters == nil {
		chapters = []*chapter.Chapter{}
	}

	model := Model{
		Item:     item,
		Chapters: chapters,
		CanRead:  len(chapters) > 0,
		Start:    Link{Label: "No Chapters"},
	}

	if model.CanRead {
		model.First = chapters[0]
		model.Last = chapters[len(chapters)-1]
		model.Start = Link{Label: "Start Reading", Href: ReadHref(item.ID, model.First.ID)}
		model.ReadFirst = Link{Label: "Read First", Href: ReadHref(item.ID, model.First.ID)}
		model.ReadLast = Link{Label: "Read Last", Href: ReadHref(item.ID, model.Last.ID)}
	} else {
		model.ReadFirst = Link{Label: "Read First"}
		model.ReadLast = Link{Label: "Read Last"}
	}

	if rating, ok := pointer.Positive(item.Rating); ok {
		model.Rating = fmt.Sprintf("%.1f", rating)
	}

	model.Facts = append(model.Facts, Fact{Label: "Chapters", Value: strconv.Itoa(len(chapters))})
	if year, ok := pointer.Positive(item.YearPublished); ok {
		model.Facts = append(model.Facts, Fact{Label: "Release Year", Value: strconv.Itoa(year)})
	}
	model.Facts = append(model.Facts,
		Fact{Label: "Status", Value: string(item.Status)},
		Fact{Label: "Type", Value: string(item.Category)},
	)

	model.Rows = make([]ChapterRow, 0, len(chapters))
	for _, ch := range chapters {
		model.Rows = append(model.Rows, ChapterRow{
			Label: "Ch " + strconv.Itoa(ch.Number),
			Title: ch.Title,
			Href:  ReadHref(item.ID, ch.ID),
		})
	}
	return model
}

// ReadHref builds the reader link of a chapter.
func ReadHref(contentID, chapterID string) string {
	return "/read/" + url.PathEscape(contentID) + "?chapter=" + url.QueryEscape(chapterID)
}
