// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedCount(t *testing.T, snapshotPages [][]bool) int {
	t.Helper()
	count := 0
	for _, pages := range snapshotPages {
		for _, revealed := range pages {
			if revealed {
				count++
			}
		}
	}
	return count
}

/*
TestImageLoaded_RevealsInOrder reveals exactly one page per frontier signal.
*/
func TestImageLoaded_RevealsInOrder(t *testing.T) {
	session, _ := newSession(newFakeSource(3, 2))
	defer session.Close()
	require.NoError(t, session.Init(context.Background(), "c", ""))

	// Global layout: (0,0)=0 (0,1)=1 (1,0)=2 (1,1)=3 (2,0)=4 (2,1)=5
	assert.True(t, session.Snapshot().Entries[0].Pages[0].Revealed)
	assert.False(t, session.Snapshot().Entries[0].Pages[1].Revealed)

	// Signals from pages past the frontier are ignored
	assert.False(t, session.ImageLoaded(1, 0))
	assert.False(t, session.ImageLoaded(0, 1))
	assert.Equal(t, 0, session.Snapshot().Revealed)

	assert.True(t, session.ImageLoaded(0, 0))
	assert.True(t, session.ImageLoaded(0, 1))

	// Repeated signals from an already revealed page do nothing
	assert.False(t, session.ImageLoaded(0, 0))

	snapshot := session.Snapshot()
	assert.Equal(t, 2, snapshot.Revealed)
	assert.True(t, snapshot.Entries[1].Pages[0].Revealed)
	assert.Equal(t, 2, snapshot.Entries[1].Pages[0].Global)
	assert.False(t, snapshot.Entries[1].Pages[1].Revealed)
}

/*
TestImageLoaded_StopsAtLastPage caps the counter at the last page.
*/
func TestImageLoaded_StopsAtLastPage(t *testing.T) {
	session, _ := newSession(newFakeSource(1, 3))
	defer session.Close()
	require.NoError(t, session.Init(context.Background(), "c", ""))

	assert.True(t, session.ImageLoaded(0, 0))
	assert.True(t, session.ImageLoaded(0, 1))
	assert.False(t, session.ImageLoaded(0, 2))
	assert.False(t, session.ImageLoaded(0, 3))
	assert.False(t, session.ImageLoaded(5, 0))

	snapshot := session.Snapshot()
	assert.Equal(t, 2, snapshot.Revealed)

	var pages [][]bool
	for _, e := range snapshot.Entries {
		var row []bool
		for _, page := range e.Pages {
			row = append(row, page.Revealed)
		}
		pages = append(pages, row)
	}
	assert.Equal(t, 3, revealedCount(t, pages))
}

/*
TestImageLoaded_ResetOnAdvance restarts the counter for the next chapter.
*/
func TestImageLoaded_ResetOnAdvance(t *testing.T) {
	session, _ := newSession(newFakeSource(5, 2))
	defer session.Close()
	ctx := context.Background()
	require.NoError(t, session.Init(ctx, "c", ""))

	session.ImageLoaded(0, 0)
	session.ImageLoaded(0, 1)
	require.Equal(t, 2, session.Snapshot().Revealed)

	_, err := session.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Snapshot().Revealed)
}

/*
TestImageFailed emits a notice without revealing anything.
*/
func TestImageFailed(t *testing.T) {
	session, recorder := newSession(newFakeSource(2, 2))
	defer session.Close()
	ctx := context.Background()
	require.NoError(t, session.Init(ctx, "c", ""))

	session.ImageFailed(ctx, 0, 1)
	session.ImageFailed(ctx, 9, 9)

	notices := recorder.All()
	require.Len(t, notices, 1)
	assert.Equal(t, "Image Load Error", notices[0].Title)
	assert.Equal(t, "Failed to load page 2", notices[0].Description)
	assert.Equal(t, 0, session.Snapshot().Revealed)
}

/*
TestScroll_HeaderVisibility toggles on moves larger than 5% of the viewport.
*/
func TestScroll_HeaderVisibility(t *testing.T) {
	session, _ := newSession(newFakeSource(1, 1))
	defer session.Close()

	assert.True(t, session.Snapshot().HeaderVisible)

	// 5% of 1000 is 50: a 40px move is ignored
	assert.True(t, session.Scroll(40, 1000))
	assert.False(t, session.Scroll(120, 1000))
	assert.False(t, session.Scroll(100, 1000))
	assert.True(t, session.Scroll(60, 1000))
	assert.True(t, session.Snapshot().HeaderVisible)
}
