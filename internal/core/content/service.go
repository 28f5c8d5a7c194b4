// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira-reader/pkg/fold"
	"github.com/taibuivan/yomira-reader/pkg/pagination"
	"github.com/taibuivan/yomira-reader/pkg/slice"
)

// # Service Layer

// Service orchestrates catalog discovery over a [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Catalog Lookups

/*
ListContent filters the catalog and cuts the requested window out of it.

Description: The category filter is exact; "all" or empty disables it. The
search term matches title, author or any genre by substring, ignoring case
and accents. An unknown category yields an empty page rather than an error.

Parameters:
  - context: context.Context
  - filter: Filter
  - params: pagination.Params (Limit 0 returns the whole remainder)

Returns:
  - []*Item: The requested page
  - pagination.Window: hasMore and the filtered total
  - error: Repository failures
*/
func (service *Service) ListContent(context context.Context, filter Filter, params pagination.Params) ([]*Item, pagination.Window, error) {
	items, err := service.repo.List(context)
	if err != nil {
		return nil, pagination.Window{}, err
	}

	matcher := fold.NewMatcher(filter.Search)
	filtered := slice.Filter(items, func(item *Item) bool {
		if filter.HasCategory() && string(item.Category) != filter.Category {
			return false
		}
		return matcher.Match(append([]string{item.Title, item.Author}, item.Genres...)...)
	})

	page, window := pagination.Slice(filtered, params)
	if page == nil {
		page = []*Item{}
	}

	service.logger.DebugContext(context, "content_listed",
		slog.String("content_type", filter.Category),
		slog.String("search", filter.Search),
		slog.Int("returned", len(page)),
		slog.Int("total", window.Total),
	)

	return page, window, nil
}

/*
GetContent fetches a single item by id.

Returns:
  - *Item: The catalog item
  - error: apperr NOT_FOUND when the id is unknown
*/
func (service *Service) GetContent(context context.Context, id string) (*Item, error) {
	return service.repo.FindByID(context, id)
}
