// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
)

// # Chapter Navigation

/*
Advance moves to the next chapter of the window.

Description: The next entry is unlocked and becomes current, and the reveal
counter restarts at zero. When fewer than [constants.ReadAheadChapters]
entries remain after it, the chapter following the window's last entry is
fetched and appended locked. Nothing happens at the end of the window.

Returns:
  - bool: true when the current chapter changed
  - error: [ErrClosed] when the session closed during the read-ahead fetch
*/
func (session *Session) Advance(ctx context.Context) (bool, error) {
	session.fetchMu.Lock()
	defer session.fetchMu.Unlock()

	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return false, ErrClosed
	}

	next := session.current + 1
	if next >= len(session.window) {
		session.mu.Unlock()
		return false, nil
	}

	unlocked := session.window[next]
	unlocked.locked = false
	session.current = next
	session.revealed = 0

	var upcoming *chapter.Chapter
	if len(session.window)-1-next < constants.ReadAheadChapters {
		tail := session.window[len(session.window)-1].ordinal
		if tail+1 < len(session.all) {
			upcoming = session.all[tail+1]
		}
	}
	session.mu.Unlock()

	session.logger.InfoContext(ctx, "reader_chapter_unlocked",
		slog.String("chapter_id", unlocked.chapter.ID),
		slog.Int("window_index", next),
	)

	if upcoming == nil {
		return true, nil
	}

	pages, err := session.fetchPages(ctx, upcoming)
	if err != nil {
		return true, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return true, ErrClosed
	}

	session.window = append(session.window, &entry{
		chapter: upcoming,
		pages:   pages,
		locked:  true,
		ordinal: session.window[len(session.window)-1].ordinal + 1,
	})

	session.logger.DebugContext(ctx, "reader_chapter_prefetched",
		slog.String("chapter_id", upcoming.ID),
		slog.Int("window", len(session.window)),
	)
	return true, nil
}

// Back moves to the previous window entry. It never re-locks or re-fetches.
func (session *Session) Back() bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed || session.current == 0 {
		return false
	}
	session.current--
	return true
}

// Jump selects a window entry from the chapter selector and unlocks it.
// The reveal counter is left untouched.
func (session *Session) Jump(index int) bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed || index < 0 || index >= len(session.window) {
		return false
	}
	session.current = index
	session.window[index].locked = false
	return true
}
