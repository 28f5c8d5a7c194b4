// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reader sequences the chapter reader.

A [Session] keeps a window of active chapters: the chapter being read
(unlocked) followed by up to two prefetched chapters (locked). Pages are
revealed one at a time, each only after the previous one reported that its
image finished loading. Moving to the next chapter unlocks it and tops the
read-ahead up with one more chapter.

# Core Responsibility

  - Window: Initial load, read-ahead and unlocking ([Session.Init], [Session.Advance]).
  - Reveal: Gating page images on load signals ([Session.ImageLoaded]).
  - Navigation: Previous and selector jumps ([Session.Back], [Session.Jump]).
  - Presentation: Render-ready copies of the state ([Session.Snapshot]).

Pages are fetched at most once per chapter for the life of a session.
*/
package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
)

// # Errors

var (
	// ErrNoChapters is returned by [Session.Init] when the content has no chapters.
	ErrNoChapters = errors.New("reader: no chapters available")

	// ErrClosed is returned when the session was closed during an operation.
	ErrClosed = errors.New("reader: session closed")
)

// # Dependencies

// Source fetches chapter rosters and pages. [*client.Client] satisfies it.
type Source interface {
	ListChapters(ctx context.Context, contentID string) ([]*chapter.Chapter, error)
	ListPages(ctx context.Context, chapterID string) ([]*chapter.Page, error)
}

// # Window

// entry is one active chapter of the window.
type entry struct {
	chapter *chapter.Chapter
	pages   []*chapter.Page
	locked  bool
	ordinal int // index in the full chapter list
}

// # Session

/*
Session is the state of one reader page.

# Concurrency

All methods are safe for concurrent use. The state mutex is never held
during a network call. A second mutex serialises fetch-then-append
sequences so the window only grows in chapter order.
*/
type Session struct {
	source   Source
	notifier notice.Notifier
	logger   *slog.Logger

	lifetime context.Context
	end      context.CancelFunc

	// fetchMu serialises Init and Advance.
	fetchMu sync.Mutex

	mu        sync.Mutex
	contentID string
	all       []*chapter.Chapter
	window    []*entry
	current   int
	revealed  int
	cache     map[string][]*chapter.Page
	ready     bool
	closed    bool
	header    headerState
}

// NewSession constructs an empty [Session]. Call [Session.Init] before use.
func NewSession(source Source, notifier notice.Notifier, logger *slog.Logger) *Session {
	lifetime, end := context.WithCancel(context.Background())
	return &Session{
		source:   source,
		notifier: notifier,
		logger:   logger,
		lifetime: lifetime,
		end:      end,
		cache:    make(map[string][]*chapter.Page),
		header:   headerState{visible: true},
	}
}

/*
Init loads the chapter roster and the initial window.

Description: The start chapter is looked up by id; an empty or unknown id
starts at the first chapter. The start chapter is fetched unlocked, then up
to [constants.ReadAheadChapters] following chapters are fetched locked.

Parameters:
  - ctx: context.Context
  - contentID: string
  - startChapterID: string (optional)

Returns:
  - error: [ErrNoChapters] when the roster is empty or unavailable, [ErrClosed]
    when the session was closed meanwhile
*/
func (session *Session) Init(ctx context.Context, contentID, startChapterID string) error {
	session.fetchMu.Lock()
	defer session.fetchMu.Unlock()

	session.logger.InfoContext(ctx, "reader_initializing",
		slog.String("content_id", contentID),
		slog.String("start_chapter_id", startChapterID),
	)

	chapters := session.fetchChapters(ctx, contentID)
	if session.isClosed() {
		return ErrClosed
	}

	if len(chapters) == 0 {
		session.logger.WarnContext(ctx, "reader_no_chapters", slog.String("content_id", contentID))
		session.notifier.Notify(ctx, notice.Error("No Chapters Available", "This content has no chapters yet"))
		return ErrNoChapters
	}

	start := 0
	if startChapterID != "" {
		for index, ch := range chapters {
			if ch.ID == startChapterID {
				start = index
				break
			}
		}
	}

	last := min(start+constants.ReadAheadChapters, len(chapters)-1)
	window := make([]*entry, 0, last-start+1)
	for ordinal := start; ordinal <= last; ordinal++ {
		pages, err := session.fetchPages(ctx, chapters[ordinal])
		if err != nil {
			return err
		}
		window = append(window, &entry{
			chapter: chapters[ordinal],
			pages:   pages,
			locked:  ordinal != start,
			ordinal: ordinal,
		})
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return ErrClosed
	}

	session.contentID = contentID
	session.all = chapters
	session.window = window
	session.current = 0
	session.revealed = 0
	session.ready = true

	session.logger.InfoContext(ctx, "reader_initialized",
		slog.String("content_id", contentID),
		slog.Int("chapters", len(chapters)),
		slog.Int("start_index", start),
		slog.Int("window", len(window)),
	)
	return nil
}

// Close ends the session. In-flight fetches are cancelled and their results dropped.
func (session *Session) Close() {
	session.mu.Lock()
	session.closed = true
	session.mu.Unlock()

	session.end()
}

// # Fetching

// fetchChapters returns the roster, or nil after notifying on failure.
func (session *Session) fetchChapters(ctx context.Context, contentID string) []*chapter.Chapter {
	fetchCtx, cancel := session.bind(ctx)
	defer cancel()

	chapters, err := session.source.ListChapters(fetchCtx, contentID)
	if err != nil {
		if session.isClosed() {
			return nil
		}
		session.logger.ErrorContext(ctx, "reader_chapters_failed", slog.String("content_id", contentID), slog.Any("error", err))
		session.notifier.Notify(ctx, notice.Error("Error Loading Chapters", err.Error()))
		return nil
	}
	return chapters
}

// fetchPages returns the pages of ch from the session cache or the source.
//
// A failed fetch yields empty pages and a notice; it is not cached, so a
// later request retries. Only [ErrClosed] is returned as an error.
func (session *Session) fetchPages(ctx context.Context, ch *chapter.Chapter) ([]*chapter.Page, error) {
	session.mu.Lock()
	cached, ok := session.cache[ch.ID]
	session.mu.Unlock()
	if ok {
		session.logger.DebugContext(ctx, "reader_pages_cached", slog.String("chapter_id", ch.ID))
		return cached, nil
	}

	fetchCtx, cancel := session.bind(ctx)
	defer cancel()

	pages, err := session.source.ListPages(fetchCtx, ch.ID)

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return nil, ErrClosed
	}

	if err != nil {
		session.logger.ErrorContext(ctx, "reader_pages_failed", slog.String("chapter_id", ch.ID), slog.Any("error", err))
		session.notifier.Notify(ctx, notice.Error("Error Loading Pages", fmt.Sprintf("Failed to load pages for chapter %s: %v", ch.ID, err)))
		return []*chapter.Page{}, nil
	}

	if pages == nil {
		pages = []*chapter.Page{}
	}
	session.cache[ch.ID] = pages
	session.logger.DebugContext(ctx, "reader_pages_fetched", slog.String("chapter_id", ch.ID), slog.Int("pages", len(pages)))
	return pages, nil
}

// bind derives a context that is also cancelled when the session closes.
func (session *Session) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	fetchCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(session.lifetime, cancel)
	return fetchCtx, func() {
		stop()
		cancel()
	}
}

func (session *Session) isClosed() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.closed
}
