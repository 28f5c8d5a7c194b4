// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content provides the fixture implementation of the catalog's data access.

The catalog is a YAML document compiled into the binary (fixtures/catalog.yaml)
and optionally replaced at startup by FIXTURE_PATH. It is validated once on
load and then served read-only, so lookups need no locking.
*/
package content

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/yomira-reader/internal/platform/apperr"
	"github.com/taibuivan/yomira-reader/internal/platform/validate"
)

//go:embed fixtures/catalog.yaml
var embeddedCatalog []byte

// # Fixture Schema

// fixtureDocument is the root of a catalog fixture file.
type fixtureDocument struct {
	Items []fixtureItem `yaml:"items"`
}

// fixtureItem is an [Item] plus the number of chapters the mock service generates.
type fixtureItem struct {
	Item              `yaml:",inline"`
	PublishedChapters *int `yaml:"published_chapters"`
}

// # Fixture Repository

// fixtureRepository implements the [Repository] interface over an in-memory catalog.
type fixtureRepository struct {
	items    []*Item
	byID     map[string]*Item
	chapters map[string]int
}

// NewEmbeddedRepository loads the catalog compiled into the binary.
func NewEmbeddedRepository() (Repository, error) {
	return LoadFixture(bytes.NewReader(embeddedCatalog))
}

// OpenFixture loads a catalog fixture from disk.
func OpenFixture(path string) (Repository, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer file.Close()

	return LoadFixture(file)
}

/*
LoadFixture decodes and validates a catalog fixture.

Description: Every item must carry an id, a title of at most [MaxTitleLength]
runes and a known category. Ratings lie within [0, 5] with one decimal,
genres are unique, release years are plausible and chapter totals are
non-negative. Ids must be unique across the catalog.

Returns:
  - Repository: A read-only fixture store
  - error: Decoding or validation failures (the first invalid item is reported)
*/
func LoadFixture(reader io.Reader) (Repository, error) {
	var document fixtureDocument

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&document); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fixture: decode catalog: %w", err)
	}

	repository := &fixtureRepository{
		items:    make([]*Item, 0, len(document.Items)),
		byID:     make(map[string]*Item, len(document.Items)),
		chapters: make(map[string]int, len(document.Items)),
	}

	for index, entry := range document.Items {
		if err := validateFixtureItem(entry); err != nil {
			return nil, fmt.Errorf("fixture: item %d (%q): %w", index, entry.ID, describe(err))
		}

		if _, dup := repository.byID[entry.ID]; dup {
			return nil, fmt.Errorf("fixture: duplicate item id %q", entry.ID)
		}

		item := entry.Item
		repository.items = append(repository.items, &item)
		repository.byID[item.ID] = &item

		if entry.PublishedChapters != nil {
			repository.chapters[item.ID] = *entry.PublishedChapters
		}
	}

	return repository, nil
}

// # Repository Implementation

// List implements [Repository].
func (repository *fixtureRepository) List(context context.Context) ([]*Item, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}
	return repository.items, nil
}

// FindByID implements [Repository].
func (repository *fixtureRepository) FindByID(context context.Context, id string) (*Item, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	item, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("Content")
	}
	return item, nil
}

// PublishedChapters implements [Repository].
func (repository *fixtureRepository) PublishedChapters(_ context.Context, id string) (int, bool) {
	total, ok := repository.chapters[id]
	return total, ok
}

// # Internal Helpers

// validateFixtureItem applies the catalog rules to one fixture entry.
func validateFixtureItem(entry fixtureItem) error {
	validator := &validate.Validator{}
	validator.Required(FieldID, entry.ID)
	validator.Required(FieldTitle, entry.Title)
	validator.MaxLen(FieldTitle, entry.Title, MaxTitleLength)
	validator.Required(FieldStatus, string(entry.Status))
	validator.Custom(FieldType, !entry.Category.IsValid(), fmt.Sprintf("Unknown category %q", entry.Category))

	if entry.Rating != nil {
		validator.Score(FieldAverageRating, *entry.Rating, 0, 5)
	}
	validator.Unique(FieldGenres, entry.Genres)

	if entry.ChapterCount != nil {
		validator.Custom(FieldChapterCount, *entry.ChapterCount < 0, "Cannot be negative")
	}
	if entry.YearPublished != nil {
		validator.Range(FieldYearPublished, *entry.YearPublished, MinYearPublished, MaxYearPublished)
	}
	if entry.PublishedChapters != nil {
		validator.Custom(FieldPublishedChapters, *entry.PublishedChapters < 0, "Cannot be negative")
	}

	return validator.Err()
}

// describe flattens validation details into a single line for startup logs.
func describe(err error) error {
	appError := apperr.As(err)
	if appError == nil || len(appError.Details) == 0 {
		return err
	}

	parts := make([]string, 0, len(appError.Details))
	for _, detail := range appError.Details {
		parts = append(parts, detail.Field+": "+detail.Message)
	}
	return fmt.Errorf("%w (%s)", err, strings.Join(parts, "; "))
}
