// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"fmt"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
)

// # Render Models

// PageView is one page slot. Unrevealed pages render as placeholders.
type PageView struct {
	Page     *chapter.Page
	Global   int
	Revealed bool
}

// EntryView is one chapter of the window.
type EntryView struct {
	Chapter *chapter.Chapter
	Locked  bool
	Pages   []PageView
}

// SelectorItem is one row of the chapter selector.
type SelectorItem struct {
	Index   int
	Label   string
	Current bool
}

// Snapshot is a render-ready copy of the session.
type Snapshot struct {
	Ready         bool
	ContentID     string
	TotalChapters int
	Current       int
	Revealed      int
	CanPrev       bool
	CanNext       bool
	HeaderVisible bool
	Entries       []EntryView
	Selector      []SelectorItem
}

// CurrentChapter returns the chapter being read, or nil before Init.
func (snapshot Snapshot) CurrentChapter() *chapter.Chapter {
	if snapshot.Current < 0 || snapshot.Current >= len(snapshot.Entries) {
		return nil
	}
	return snapshot.Entries[snapshot.Current].Chapter
}

// Snapshot returns a copy of the session state.
func (session *Session) Snapshot() Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()

	snapshot := Snapshot{
		Ready:         session.ready,
		ContentID:     session.contentID,
		TotalChapters: len(session.all),
		Current:       session.current,
		Revealed:      session.revealed,
		CanPrev:       session.current > 0,
		CanNext:       session.current < len(session.window)-1,
		HeaderVisible: session.header.visible,
		Entries:       make([]EntryView, 0, len(session.window)),
		Selector:      make([]SelectorItem, 0, len(session.window)),
	}

	global := 0
	for index, e := range session.window {
		view := EntryView{
			Chapter: e.chapter,
			Locked:  e.locked,
			Pages:   make([]PageView, 0, len(e.pages)),
		}
		for _, page := range e.pages {
			view.Pages = append(view.Pages, PageView{
				Page:     page,
				Global:   global,
				Revealed: global <= session.revealed,
			})
			global++
		}
		snapshot.Entries = append(snapshot.Entries, view)

		title := e.chapter.Title
		if title == "" {
			title = "Untitled"
		}
		snapshot.Selector = append(snapshot.Selector, SelectorItem{
			Index:   index,
			Label:   fmt.Sprintf("Ch %d: %s", e.chapter.Number, title),
			Current: index == session.current,
		})
	}
	return snapshot
}
