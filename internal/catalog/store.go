// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the browsing state of the reader front end.

It provides two components:

  - [Store]: the catalog list with a keyed in-memory cache and incremental
    "load more" pagination.
  - [View]: the catalog page view model (tabs, search, infinite-scroll
    sentinel, render-ready cards).

The store is an explicit object created by the session owner and injected
into the view. It never returns fetch errors. Failures degrade the list and
are reported through a [notice.Notifier].
*/
package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/yomira-reader/internal/client"
	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
)

// # Dependencies

// Source fetches one window of the catalog. [*client.Client] satisfies it.
type Source interface {
	ListContent(ctx context.Context, query client.Query) (*client.Listing, error)
}

// # State

// Key identifies a cached first page: the exact (category, search) pair.
type Key struct {
	Filter string
	Search string
}

// State is a copy of the store's observable state.
type State struct {
	Key     Key
	Items   []*content.Item
	HasMore bool
	Loading bool
	Cursor  int
}

// cacheEntry is the first page fetched for a [Key].
type cacheEntry struct {
	items   []*content.Item
	hasMore bool
}

// # Store

// Store is the catalog list with its fetch cache.
//
// # Concurrency
//
// All methods are safe for concurrent use. The mutex is never held during a
// fetch. A generation counter discards results of a superseded [Store.Load].
type Store struct {
	source   Source
	notifier notice.Notifier
	logger   *slog.Logger
	pageSize int

	mu         sync.Mutex
	key        Key
	items      []*content.Item
	hasMore    bool
	loading    bool
	cursor     int
	generation uint64
	cancel     context.CancelFunc
	cache      map[Key]cacheEntry
	listeners  map[int]func(State)
	nextListen int
}

// NewStore constructs a [Store]. A non-positive pageSize falls back to
// [constants.DefaultCatalogPageSize].
func NewStore(source Source, notifier notice.Notifier, logger *slog.Logger, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = constants.DefaultCatalogPageSize
	}
	return &Store{
		source:    source,
		notifier:  notifier,
		logger:    logger,
		pageSize:  pageSize,
		cache:     make(map[Key]cacheEntry),
		listeners: make(map[int]func(State)),
	}
}

// # Observation

// State returns a copy of the current state.
func (store *Store) State() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.stateLocked()
}

// Subscribe registers fn to receive every state transition. The returned
// function removes the subscription.
func (store *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	store.mu.Lock()
	id := store.nextListen
	store.nextListen++
	store.listeners[id] = fn
	store.mu.Unlock()

	return func() {
		store.mu.Lock()
		delete(store.listeners, id)
		store.mu.Unlock()
	}
}

// Cached reports whether a first page is cached for the pair.
func (store *Store) Cached(filter, search string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	_, ok := store.cache[newKey(filter, search)]
	return ok
}

// # Loading

/*
Load replaces the list with the first page of the (filter, search) pair.

Description: A cached pair is served without touching the network. A miss
fetches one page, caches it under the exact pair and records hasMore. A Load
started while another fetch is in flight supersedes it; the older result is
dropped when it arrives.

Parameters:
  - ctx: context.Context
  - filter: string (category id, "all" or empty)
  - search: string
*/
func (store *Store) Load(ctx context.Context, filter, search string) {
	key := newKey(filter, search)

	store.mu.Lock()
	store.supersedeLocked()
	generation := store.generation
	store.key = key
	store.cursor = 0

	if cached, ok := store.cache[key]; ok {
		store.items = slices.Clone(cached.items)
		store.hasMore = cached.hasMore
		store.cursor = len(cached.items)
		store.loading = false
		state := store.stateLocked()
		store.mu.Unlock()

		store.logger.DebugContext(ctx, "catalog_cache_hit",
			slog.String("filter", key.Filter),
			slog.String("search", key.Search),
			slog.Int("items", len(state.Items)),
		)
		store.publish(state)
		return
	}

	store.loading = true
	fetchCtx, cancel := context.WithCancel(ctx)
	store.cancel = cancel
	state := store.stateLocked()
	store.mu.Unlock()
	store.publish(state)

	store.logger.DebugContext(ctx, "catalog_cache_miss",
		slog.String("filter", key.Filter),
		slog.String("search", key.Search),
	)

	listing, err := store.source.ListContent(fetchCtx, store.query(key, 0))
	cancel()

	store.mu.Lock()
	if generation != store.generation {
		store.mu.Unlock()
		store.logger.DebugContext(ctx, "catalog_result_discarded", slog.String("filter", key.Filter), slog.String("search", key.Search))
		return
	}

	store.loading = false
	store.cancel = nil
	if err != nil {
		store.items = []*content.Item{}
		store.hasMore = false
		state = store.stateLocked()
		store.mu.Unlock()

		store.fail(ctx, "catalog_load_failed", key, err)
		store.publish(state)
		return
	}

	store.items = listing.Items
	store.hasMore = listing.HasMore
	store.cursor = len(listing.Items)
	store.cache[key] = cacheEntry{items: slices.Clone(listing.Items), hasMore: listing.HasMore}
	state = store.stateLocked()
	store.mu.Unlock()

	store.logger.InfoContext(ctx, "catalog_loaded",
		slog.String("filter", key.Filter),
		slog.String("search", key.Search),
		slog.Int("items", len(state.Items)),
		slog.Bool("has_more", state.HasMore),
	)
	store.publish(state)
}

/*
LoadMore appends the next page of the current pair.

Description: A no-op when there is nothing more or a fetch is already in
flight. The page is appended to the list only; the cache keeps the first
page as it was fetched.

Returns:
  - bool: true when a fetch was issued
*/
func (store *Store) LoadMore(ctx context.Context) bool {
	store.mu.Lock()
	if !store.hasMore || store.loading {
		store.mu.Unlock()
		return false
	}

	store.loading = true
	generation := store.generation
	key := store.key
	offset := store.cursor
	fetchCtx, cancel := context.WithCancel(ctx)
	store.cancel = cancel
	state := store.stateLocked()
	store.mu.Unlock()
	store.publish(state)

	listing, err := store.source.ListContent(fetchCtx, store.query(key, offset))
	cancel()

	store.mu.Lock()
	if generation != store.generation {
		store.mu.Unlock()
		store.logger.DebugContext(ctx, "catalog_result_discarded", slog.String("filter", key.Filter), slog.Int("offset", offset))
		return true
	}

	store.loading = false
	store.cancel = nil
	if err != nil {
		store.hasMore = false
		state = store.stateLocked()
		store.mu.Unlock()

		store.fail(ctx, "catalog_load_more_failed", key, err)
		store.publish(state)
		return true
	}

	store.items = append(store.items, listing.Items...)
	store.cursor += len(listing.Items)
	store.hasMore = listing.HasMore
	state = store.stateLocked()
	store.mu.Unlock()

	store.logger.DebugContext(ctx, "catalog_page_appended",
		slog.Int("offset", offset),
		slog.Int("received", len(listing.Items)),
		slog.Bool("has_more", state.HasMore),
	)
	store.publish(state)
	return true
}

// Close cancels any in-flight fetch and drops its result.
func (store *Store) Close() {
	store.mu.Lock()
	store.supersedeLocked()
	store.loading = false
	store.mu.Unlock()
}

// # Internal Helpers

func newKey(filter, search string) Key {
	if filter == "" {
		filter = constants.CategoryAll
	}
	return Key{Filter: filter, Search: search}
}

func (store *Store) query(key Key, offset int) client.Query {
	return client.Query{
		Category: key.Filter,
		Search:   key.Search,
		Limit:    store.pageSize,
		Offset:   offset,
	}
}

// supersedeLocked invalidates the in-flight fetch, if any.
func (store *Store) supersedeLocked() {
	store.generation++
	if store.cancel != nil {
		store.cancel()
		store.cancel = nil
	}
}

func (store *Store) stateLocked() State {
	return State{
		Key:     store.key,
		Items:   slices.Clone(store.items),
		HasMore: store.hasMore,
		Loading: store.loading,
		Cursor:  store.cursor,
	}
}

func (store *Store) publish(state State) {
	store.mu.Lock()
	listeners := make([]func(State), 0, len(store.listeners))
	for _, fn := range store.listeners {
		listeners = append(listeners, fn)
	}
	store.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (store *Store) fail(ctx context.Context, event string, key Key, err error) {
	store.logger.ErrorContext(ctx, event,
		slog.String("filter", key.Filter),
		slog.String("search", key.Search),
		slog.Any("error", err),
	)
	store.notifier.Notify(ctx, notice.Error("Error Loading Content", err.Error()))
}
