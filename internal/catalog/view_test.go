// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-reader/internal/catalog"
	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
	"github.com/taibuivan/yomira-reader/pkg/pointer"
)

func newView(source *fakeSource, pageSize int) (*catalog.View, *notice.Recorder) {
	recorder := &notice.Recorder{}
	store := catalog.NewStore(source, recorder, discard(), pageSize)
	return catalog.NewView(store, recorder), recorder
}

/*
TestView_Tabs verifies the fixed order and the active marker.
*/
func TestView_Tabs(t *testing.T) {
	view, _ := newView(sampleCatalog(), 50)
	defer view.Close()

	tabs := view.Tabs()
	require.Len(t, tabs, 6)
	assert.Equal(t, "all", tabs[0].ID)
	assert.True(t, tabs[0].Active)
	assert.Equal(t, "manhua", tabs[5].ID)

	view.SetFilter(context.Background(), "anime")
	for _, tab := range view.Tabs() {
		assert.Equal(t, tab.ID == "anime", tab.Active, tab.ID)
	}
}

/*
TestView_FilterAndSearch reload through the store cache.
*/
func TestView_FilterAndSearch(t *testing.T) {
	source := sampleCatalog()
	view, _ := newView(source, 50)
	defer view.Close()
	ctx := context.Background()

	view.Start(ctx)
	assert.Len(t, view.Cards(), 5)

	view.SetFilter(ctx, "manga")
	assert.Len(t, view.Cards(), 1)

	view.SetFilter(ctx, "all")
	view.SetFilter(ctx, "manga")
	assert.Equal(t, 2, source.calls())

	view.SetSearch(ctx, "x")
	assert.Equal(t, 3, source.calls())
	assert.Equal(t, "x", source.queries[2].Search)
	assert.Equal(t, "manga", source.queries[2].Category)
}

/*
TestView_Sentinel fires LoadMore only while armed with more to load.
*/
func TestView_Sentinel(t *testing.T) {
	source := sampleCatalog()
	view, _ := newView(source, 2)
	defer view.Close()
	ctx := context.Background()

	// 1. Before any load there is nothing more
	assert.False(t, view.SentinelVisible(ctx))

	view.Start(ctx)
	assert.True(t, view.SentinelVisible(ctx))
	assert.Len(t, view.Cards(), 4)

	// 2. Re-armed by the loading transition
	assert.True(t, view.SentinelVisible(ctx))
	assert.Len(t, view.Cards(), 5)

	// 3. Exhausted
	assert.False(t, view.SentinelVisible(ctx))
	assert.Equal(t, 3, source.calls())
}

/*
TestView_SentinelWhileLoading ignores the signal during a pending fetch.
*/
func TestView_SentinelWhileLoading(t *testing.T) {
	source := sampleCatalog()
	view, _ := newView(source, 2)
	defer view.Close()
	ctx := context.Background()

	view.Start(ctx)
	source.block()

	done := make(chan struct{})
	go func() {
		defer close(done)
		view.SentinelVisible(ctx)
	}()
	<-source.started

	assert.True(t, view.Loading())
	assert.False(t, view.SentinelVisible(ctx))

	close(source.gate)
	<-done
	assert.Equal(t, 2, source.calls())
}

/*
TestView_Cards covers the optional field rules.
*/
func TestView_Cards(t *testing.T) {
	full := &content.Item{
		ID:           "1",
		Title:        "Solo Leveling",
		Category:     content.CategoryManhwa,
		Status:       content.StatusCompleted,
		Author:       "Chugong",
		Rating:       pointer.To(4.8),
		ChapterCount: pointer.To(179),
		Genres:       []string{"Action", "Fantasy", "Adventure", "Drama"},
	}
	bare := &content.Item{
		ID:           "2",
		Title:        "Untitled",
		Category:     content.CategoryManga,
		Status:       "hiatus",
		Rating:       pointer.To(0.0),
		ChapterCount: pointer.To(0),
		Genres:       []string{"Action"},
	}

	view, _ := newView(newFakeSource(full, bare), 50)
	defer view.Close()
	view.Start(context.Background())

	cards := view.Cards()
	require.Len(t, cards, 2)

	assert.Equal(t, "4.8", cards[0].Rating)
	assert.Equal(t, "CH 179", cards[0].Chapters)
	assert.Equal(t, []string{"Action", "Fantasy"}, cards[0].Genres)
	assert.Equal(t, "+2", cards[0].Overflow)
	assert.Equal(t, "Chugong", cards[0].Author)
	assert.Equal(t, "/content/1", cards[0].Link)

	assert.Empty(t, cards[1].Rating)
	assert.Empty(t, cards[1].Chapters)
	assert.Empty(t, cards[1].Author)
	assert.Equal(t, []string{"Action"}, cards[1].Genres)
	assert.Empty(t, cards[1].Overflow)
	assert.Equal(t, "hiatus", cards[1].Status)
}

/*
TestView_EmptyMessage depends on the search term.
*/
func TestView_EmptyMessage(t *testing.T) {
	view, _ := newView(newFakeSource(), 50)
	defer view.Close()

	assert.Contains(t, view.EmptyMessage(), "No content available")

	view.SetSearch(context.Background(), "naruto")
	assert.Contains(t, view.EmptyMessage(), `"naruto"`)
}

/*
TestView_SubmitRequest validates the request form.
*/
func TestView_SubmitRequest(t *testing.T) {
	view, recorder := newView(newFakeSource(), 50)
	defer view.Close()
	ctx := context.Background()

	assert.False(t, view.SubmitRequest(ctx, catalog.Request{Title: "Naruto"}))
	assert.False(t, view.SubmitRequest(ctx, catalog.Request{Title: "Naruto", Variant: "comic"}))
	assert.True(t, view.SubmitRequest(ctx, catalog.Request{Title: "Naruto", Variant: "manga"}))

	notices := recorder.Drain()
	require.Len(t, notices, 3)
	assert.Equal(t, "Missing Information", notices[0].Title)
	assert.Equal(t, notice.VariantDestructive, notices[1].Variant)
	assert.Equal(t, "Request Submitted", notices[2].Title)
	assert.Contains(t, notices[2].Description, `"Naruto"`)
}
