// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/taibuivan/yomira-reader/internal/client"
	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/pkg/pagination"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// # Fakes

// fakeSource serves an in-memory catalog and records every query. When gate
// is set, each call announces itself on started and waits for a release.
type fakeSource struct {
	mu      sync.Mutex
	items   []*content.Item
	queries []client.Query
	err     error

	gate    chan struct{}
	started chan client.Query
}

func newFakeSource(items ...*content.Item) *fakeSource {
	return &fakeSource{items: items}
}

func (source *fakeSource) ListContent(ctx context.Context, query client.Query) (*client.Listing, error) {
	source.mu.Lock()
	source.queries = append(source.queries, query)
	gate, started, err := source.gate, source.started, source.err
	source.mu.Unlock()

	if gate != nil {
		started <- query
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	var filtered []*content.Item
	for _, item := range source.items {
		if query.Category == "all" || query.Category == string(item.Category) {
			filtered = append(filtered, item)
		}
	}
	page, window := pagination.Slice(filtered, pagination.Params{Offset: query.Offset, Limit: query.Limit})
	return &client.Listing{Items: append([]*content.Item{}, page...), HasMore: window.HasMore, Total: window.Total}, nil
}

func (source *fakeSource) calls() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return len(source.queries)
}

func (source *fakeSource) block() {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.gate = make(chan struct{})
	source.started = make(chan client.Query, 4)
}

func item(id string, category content.Category) *content.Item {
	return &content.Item{ID: id, Title: "Title " + id, Category: category, Status: content.StatusOngoing}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itemIDs(items []*content.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func sampleCatalog() *fakeSource {
	return newFakeSource(
		item("1", content.CategoryManhwa),
		item("2", content.CategoryManga),
		item("3", content.CategoryManhwa),
		item("4", content.CategoryAnime),
		item("5", content.CategoryNovel),
	)
}
