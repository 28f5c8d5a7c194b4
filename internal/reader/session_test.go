// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
	"github.com/taibuivan/yomira-reader/internal/reader"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// # Fakes

// fakeSource serves n chapters with a fixed page count each and counts page
// fetches per chapter. Chapters listed in failPages fail to load.
type fakeSource struct {
	mu          sync.Mutex
	chapters    int
	pages       int
	chaptersErr error
	failPages   map[string]bool
	fetches     map[string]int

	gate    chan struct{}
	started chan string
}

func newFakeSource(chapters, pages int) *fakeSource {
	return &fakeSource{chapters: chapters, pages: pages, failPages: map[string]bool{}, fetches: map[string]int{}}
}

func (source *fakeSource) ListChapters(_ context.Context, contentID string) ([]*chapter.Chapter, error) {
	if source.chaptersErr != nil {
		return nil, source.chaptersErr
	}
	chapters := make([]*chapter.Chapter, 0, source.chapters)
	for n := 1; n <= source.chapters; n++ {
		chapters = append(chapters, &chapter.Chapter{ID: chapter.ChapterID(contentID, n), ContentID: contentID, Number: n, Title: "Chapter"})
	}
	return chapters, nil
}

func (source *fakeSource) ListPages(ctx context.Context, chapterID string) ([]*chapter.Page, error) {
	source.mu.Lock()
	source.fetches[chapterID]++
	fail := source.failPages[chapterID]
	gate, started := source.gate, source.started
	source.mu.Unlock()

	if gate != nil {
		started <- chapterID
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if fail {
		return nil, errors.New("api: status 500: Failed to fetch pages")
	}

	pages := make([]*chapter.Page, 0, source.pages)
	for n := 1; n <= source.pages; n++ {
		pages = append(pages, &chapter.Page{ID: chapter.PageID(chapterID, n), ChapterID: chapterID, PageNumber: n})
	}
	return pages, nil
}

func (source *fakeSource) fetchCount(chapterID string) int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.fetches[chapterID]
}

func (source *fakeSource) block() {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.gate = make(chan struct{})
	source.started = make(chan string, 4)
}

func newSession(source reader.Source) (*reader.Session, *notice.Recorder) {
	recorder := &notice.Recorder{}
	return reader.NewSession(source, recorder, slog.New(slog.NewTextHandler(io.Discard, nil))), recorder
}

func chapterIDs(snapshot reader.Snapshot) []string {
	ids := make([]string, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		ids = append(ids, e.Chapter.ID)
	}
	return ids
}

func locks(snapshot reader.Snapshot) []bool {
	out := make([]bool, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		out = append(out, e.Locked)
	}
	return out
}

// # Init

/*
TestInit_WindowLength checks min(3, N-k) entries with only the first unlocked.
*/
func TestInit_WindowLength(t *testing.T) {
	cases := []struct {
		name     string
		chapters int
		start    string
		want     []string
	}{
		{"from the start", 10, "", []string{"c-ch-1", "c-ch-2", "c-ch-3"}},
		{"middle", 10, "c-ch-5", []string{"c-ch-5", "c-ch-6", "c-ch-7"}},
		{"second to last", 10, "c-ch-9", []string{"c-ch-9", "c-ch-10"}},
		{"last", 10, "c-ch-10", []string{"c-ch-10"}},
		{"unknown start", 10, "c-ch-99", []string{"c-ch-1", "c-ch-2", "c-ch-3"}},
		{"short roster", 2, "", []string{"c-ch-1", "c-ch-2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session, _ := newSession(newFakeSource(tc.chapters, 3))
			defer session.Close()

			require.NoError(t, session.Init(context.Background(), "c", tc.start))

			snapshot := session.Snapshot()
			assert.True(t, snapshot.Ready)
			assert.Equal(t, tc.want, chapterIDs(snapshot))
			assert.False(t, snapshot.Entries[0].Locked)
			for _, e := range snapshot.Entries[1:] {
				assert.True(t, e.Locked)
			}
			assert.Equal(t, 0, snapshot.Current)
			assert.Equal(t, 0, snapshot.Revealed)
			assert.Equal(t, tc.chapters, snapshot.TotalChapters)
		})
	}
}

/*
TestInit_NoChapters is terminal and emits a notice.
*/
func TestInit_NoChapters(t *testing.T) {
	session, recorder := newSession(newFakeSource(0, 3))
	defer session.Close()

	err := session.Init(context.Background(), "c", "")
	assert.ErrorIs(t, err, reader.ErrNoChapters)
	assert.False(t, session.Snapshot().Ready)

	notices := recorder.All()
	require.Len(t, notices, 1)
	assert.Equal(t, "No Chapters Available", notices[0].Title)
}

/*
TestInit_ChaptersFailure reports both the fetch error and the empty roster.
*/
func TestInit_ChaptersFailure(t *testing.T) {
	source := newFakeSource(5, 3)
	source.chaptersErr = errors.New("connection refused")
	session, recorder := newSession(source)
	defer session.Close()

	assert.ErrorIs(t, session.Init(context.Background(), "c", ""), reader.ErrNoChapters)

	notices := recorder.All()
	require.Len(t, notices, 2)
	assert.Equal(t, "Error Loading Chapters", notices[0].Title)
	assert.Equal(t, "No Chapters Available", notices[1].Title)
}

/*
TestInit_PageFailure keeps the entry with no pages.
*/
func TestInit_PageFailure(t *testing.T) {
	source := newFakeSource(5, 3)
	source.failPages["c-ch-2"] = true
	session, recorder := newSession(source)
	defer session.Close()

	require.NoError(t, session.Init(context.Background(), "c", ""))

	snapshot := session.Snapshot()
	require.Len(t, snapshot.Entries, 3)
	assert.Empty(t, snapshot.Entries[1].Pages)
	assert.Len(t, snapshot.Entries[2].Pages, 3)

	notices := recorder.All()
	require.Len(t, notices, 1)
	assert.Equal(t, "Error Loading Pages", notices[0].Title)
	assert.Equal(t, notice.VariantDestructive, notices[0].Variant)
}
