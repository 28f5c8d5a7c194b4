// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/taibuivan/yomira-reader/internal/platform/constants"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
)

// # Progressive Reveal

/*
ImageLoaded reports that the image of page pageIdx in window entry chapterIdx
finished loading.

Description: Only the frontier page (the highest revealed one) advances the
counter, so page g+1 is never revealed before page g signalled. The counter
stops at the last page of the window.

Returns:
  - bool: true when one more page was revealed
*/
func (session *Session) ImageLoaded(chapterIdx, pageIdx int) bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	global, ok := session.globalIndexLocked(chapterIdx, pageIdx)
	if !ok || global != session.revealed {
		return false
	}
	if session.revealed >= session.totalPagesLocked()-1 {
		return false
	}

	session.revealed++
	return true
}

// ImageFailed reports a page image that could not be loaded. The reveal
// counter does not move.
func (session *Session) ImageFailed(ctx context.Context, chapterIdx, pageIdx int) {
	session.mu.Lock()
	if chapterIdx < 0 || chapterIdx >= len(session.window) {
		session.mu.Unlock()
		return
	}
	pages := session.window[chapterIdx].pages
	if pageIdx < 0 || pageIdx >= len(pages) {
		session.mu.Unlock()
		return
	}
	page := pages[pageIdx]
	session.mu.Unlock()

	session.logger.WarnContext(ctx, "reader_image_failed", slog.String("page_id", page.ID))
	session.notifier.Notify(ctx, notice.Error("Image Load Error", fmt.Sprintf("Failed to load page %d", page.PageNumber)))
}

// globalIndexLocked sums the page counts of the entries before chapterIdx.
func (session *Session) globalIndexLocked(chapterIdx, pageIdx int) (int, bool) {
	if chapterIdx < 0 || chapterIdx >= len(session.window) {
		return 0, false
	}
	if pageIdx < 0 || pageIdx >= len(session.window[chapterIdx].pages) {
		return 0, false
	}

	global := pageIdx
	for _, before := range session.window[:chapterIdx] {
		global += len(before.pages)
	}
	return global, true
}

func (session *Session) totalPagesLocked() int {
	total := 0
	for _, e := range session.window {
		total += len(e.pages)
	}
	return total
}

// # Header Visibility

// headerState tracks the auto-hiding reader header.
type headerState struct {
	visible bool
	lastY   float64
}

// Scroll reports a new scroll offset. Scrolling down by more than
// [constants.HeaderScrollThreshold] of the viewport hides the header;
// scrolling up by as much shows it again.
//
// Returns whether the header is visible.
func (session *Session) Scroll(y, viewportHeight float64) bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	threshold := viewportHeight * constants.HeaderScrollThreshold
	if math.Abs(y-session.header.lastY) > threshold {
		session.header.visible = y < session.header.lastY
		session.header.lastY = y
	}
	return session.header.visible
}
