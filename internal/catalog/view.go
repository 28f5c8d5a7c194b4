// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
	"github.com/taibuivan/yomira-reader/internal/platform/notice"
	"github.com/taibuivan/yomira-reader/internal/platform/validate"
	"github.com/taibuivan/yomira-reader/pkg/pointer"
	"github.com/taibuivan/yomira-reader/pkg/slice"
)

// maxCardGenres is how many genre badges a card shows before "+k".
const maxCardGenres = 2

// # Render Models

// Tab is one category button of the catalog page.
type Tab struct {
	ID     string
	Label  string
	Active bool
}

// Card is one render-ready catalog tile. Optional fields are empty when the
// item lacks them.
type Card struct {
	ID       string
	Title    string
	Category string
	Status   string
	Author   string
	CoverURL string
	Rating   string   // "%.1f", only when > 0
	Chapters string   // "CH n", only when > 0
	Genres   []string // at most two
	Overflow string   // "+k" for the remaining genres
	Link     string
}

// tabs is the fixed tab order of the catalog page.
var tabs = []Tab{
	{ID: constants.CategoryAll, Label: "All"},
	{ID: string(content.CategoryManga), Label: "Manga"},
	{ID: string(content.CategoryManhwa), Label: "Manhwa"},
	{ID: string(content.CategoryAnime), Label: "Anime"},
	{ID: string(content.CategoryNovel), Label: "Novel"},
	{ID: string(content.CategoryManhua), Label: "Manhua"},
}

// # View

/*
View is the catalog page view model.

The infinite-scroll sentinel fires at most once per arming. It re-arms every
time the store's (hasMore, loading) pair changes.
*/
type View struct {
	store    *Store
	notifier notice.Notifier

	mu          sync.Mutex
	filter      string
	search      string
	armed       bool
	lastHasMore bool
	lastLoading bool
	unsubscribe func()
}

// NewView constructs a [View] over store with the "all" tab selected.
func NewView(store *Store, notifier notice.Notifier) *View {
	view := &View{
		store:    store,
		notifier: notifier,
		filter:   constants.CategoryAll,
		armed:    true,
	}
	view.unsubscribe = store.Subscribe(view.observe)
	return view
}

// Start performs the initial load of the selected tab.
func (view *View) Start(ctx context.Context) {
	view.reload(ctx)
}

// Close detaches the view from its store.
func (view *View) Close() {
	view.unsubscribe()
}

// SetFilter selects a tab and loads its first page.
func (view *View) SetFilter(ctx context.Context, filter string) {
	if filter == "" {
		filter = constants.CategoryAll
	}

	view.mu.Lock()
	view.filter = filter
	view.mu.Unlock()

	view.reload(ctx)
}

// SetSearch changes the search term and loads the first page.
func (view *View) SetSearch(ctx context.Context, search string) {
	view.mu.Lock()
	view.search = search
	view.mu.Unlock()

	view.reload(ctx)
}

/*
SentinelVisible reports that the bottom sentinel entered the viewport.

Returns:
  - bool: true when the signal triggered a LoadMore
*/
func (view *View) SentinelVisible(ctx context.Context) bool {
	state := view.store.State()

	view.mu.Lock()
	if !view.armed || state.Loading || !state.HasMore {
		view.mu.Unlock()
		return false
	}
	view.armed = false
	view.mu.Unlock()

	return view.store.LoadMore(ctx)
}

// # Render

// Tabs returns the category tabs with the active one marked.
func (view *View) Tabs() []Tab {
	view.mu.Lock()
	active := view.filter
	view.mu.Unlock()

	return slice.Map(tabs, func(tab Tab) Tab {
		tab.Active = tab.ID == active
		return tab
	})
}

// Search returns the current search term.
func (view *View) Search() string {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.search
}

// Loading reports whether the store is fetching.
func (view *View) Loading() bool {
	return view.store.State().Loading
}

// Cards derives the render rows of the current list.
func (view *View) Cards() []Card {
	return slice.Map(view.store.State().Items, newCard)
}

// EmptyMessage returns the placeholder text for an empty result.
func (view *View) EmptyMessage() string {
	if search := view.Search(); search != "" {
		return fmt.Sprintf("We couldn't find any results for %q. Try adjusting your search.", search)
	}
	return "No content available in this category yet. Check back soon!"
}

// # Content Requests

// Request is the "request content" form at the bottom of the catalog page.
type Request struct {
	Title   string
	Email   string
	Variant string
}

// SubmitRequest validates the form and acknowledges it with a notice.
//
// Returns false when a required field is missing.
func (view *View) SubmitRequest(ctx context.Context, request Request) bool {
	validator := &validate.Validator{}
	validator.Required("title", request.Title)
	validator.MaxLen("title", request.Title, content.MaxTitleLength)
	validator.OneOf("variant", request.Variant, content.CategoryNames()...)

	if validator.HasErrors() {
		view.notifier.Notify(ctx, notice.Error("Missing Information", "Please fill in all fields"))
		return false
	}

	view.notifier.Notify(ctx, notice.Notice{
		Title:       "Request Submitted",
		Description: fmt.Sprintf("Your request for %q has been submitted!", strings.TrimSpace(request.Title)),
		Variant:     notice.VariantDefault,
	})
	return true
}

// # Internal Helpers

func (view *View) reload(ctx context.Context) {
	view.mu.Lock()
	filter, search := view.filter, view.search
	view.mu.Unlock()

	view.store.Load(ctx, filter, search)
}

// observe re-arms the sentinel when (hasMore, loading) changes.
func (view *View) observe(state State) {
	view.mu.Lock()
	defer view.mu.Unlock()

	if state.HasMore != view.lastHasMore || state.Loading != view.lastLoading {
		view.armed = true
	}
	view.lastHasMore = state.HasMore
	view.lastLoading = state.Loading
}

func newCard(item *content.Item) Card {
	card := Card{
		ID:       item.ID,
		Title:    item.Title,
		Category: string(item.Category),
		Status:   string(item.Status),
		Author:   item.Author,
		CoverURL: item.CoverImageURL,
		Link:     "/content/" + item.ID,
	}

	if rating, ok := pointer.Positive(item.Rating); ok {
		card.Rating = fmt.Sprintf("%.1f", rating)
	}
	if chapters, ok := pointer.Positive(item.ChapterCount); ok {
		card.Chapters = fmt.Sprintf("CH %d", chapters)
	}

	genres, rest := slice.Head(item.Genres, maxCardGenres)
	card.Genres = genres
	if rest > 0 {
		card.Overflow = fmt.Sprintf("+%d", rest)
	}
	return card
}
