// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content defines the catalog entities of the reader and serves them
through the mock data API.

It manages browsable titles (Manga, Manhwa, Manhua, Anime, Novels) including
their metadata and the optional summary fields shown on catalog cards.

Core Responsibility:

  - Catalogue: Defines categories and lifecycle statuses.
  - Discovery: Category filtering and accent-insensitive search.
  - Delivery: Offset-paginated listings for infinite scroll.

Items are immutable once fetched; clients replace them wholesale on re-fetch.
*/
package content

import "github.com/taibuivan/yomira-reader/internal/platform/constants"

// # Domain Enums

// Category is the content kind of a catalog item.
type Category string

const (
	CategoryManga  Category = "manga"
	CategoryManhwa Category = "manhwa"
	CategoryManhua Category = "manhua"
	CategoryAnime  Category = "anime"
	CategoryNovel  Category = "novel"
)

// Categories lists every fixed category in display order.
var Categories = []Category{
	CategoryManga,
	CategoryManhwa,
	CategoryAnime,
	CategoryNovel,
	CategoryManhua,
}

// IsValid reports whether c is a recognised [Category] value.
func (c Category) IsValid() bool {
	switch c {
	case
		CategoryManga,
		CategoryManhwa,
		CategoryManhua,
		CategoryAnime,
		CategoryNovel:
		return true
	}
	return false
}

// Status represents the publication lifecycle of an item.
//
// Any value other than the two named ones is treated as "other".
type Status string

const (
	// StatusOngoing indicates the publication is actively updating.
	StatusOngoing Status = "ongoing"

	// StatusCompleted indicates no further chapters are expected.
	StatusCompleted Status = "completed"
)

// IsKnown reports whether s is ongoing or completed.
func (s Status) IsKnown() bool {
	return s == StatusOngoing || s == StatusCompleted
}

// # Core Entities

// Item is one browsable title in the catalog.
type Item struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Category      Category `json:"type" yaml:"type"`
	Status        Status   `json:"status" yaml:"status"`
	CoverImageURL string   `json:"cover_image_url,omitempty" yaml:"cover_image_url"`
	Author        string   `json:"author,omitempty" yaml:"author"`
	Rating        *float64 `json:"average_rating,omitempty" yaml:"average_rating"` // 0–5, one decimal
	Genres        []string `json:"genres,omitempty" yaml:"genres"`                 // unique within an item
	Description   string   `json:"description,omitempty" yaml:"description"`
	ChapterCount  *int     `json:"chapter_count,omitempty" yaml:"chapter_count"`
	YearPublished *int     `json:"year_published,omitempty" yaml:"year_published"`
}

// # Search & Filtering

// Filter holds the parameters for a catalog list query.
type Filter struct {
	// Category is a [Category] value, "all" or empty for no filter.
	Category string
	// Search is matched against title, author and genres.
	Search string
}

// HasCategory reports whether the filter restricts the category.
func (f Filter) HasCategory() bool {
	return f.Category != "" && f.Category != constants.CategoryAll
}

// # Limits

const (
	// MaxTitleLength bounds catalog and request titles, in runes.
	MaxTitleLength = 200

	MinYearPublished = 1900
	MaxYearPublished = 2100
)

// CategoryNames returns [Categories] as plain strings.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// # Field Identifiers

// Field names used in validation errors.
const (
	FieldID                = "id"
	FieldTitle             = "title"
	FieldType              = "type"
	FieldStatus            = "status"
	FieldAverageRating     = "average_rating"
	FieldGenres            = "genres"
	FieldChapterCount      = "chapter_count"
	FieldYearPublished     = "year_published"
	FieldPublishedChapters = "published_chapters"
)
