// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/apperr"
)

/*
TestEmbeddedRepository verifies the bundled catalog loads and indexes.
*/
func TestEmbeddedRepository(t *testing.T) {
	repo, err := content.NewEmbeddedRepository()
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 8)
	assert.Equal(t, "1", items[0].ID)

	item, err := repo.FindByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "One Piece", item.Title)
	assert.Equal(t, content.CategoryManga, item.Category)

	total, ok := repo.PublishedChapters(context.Background(), "1")
	assert.True(t, ok)
	assert.Equal(t, 179, total)

	_, ok = repo.PublishedChapters(context.Background(), "unknown")
	assert.False(t, ok)
}

/*
TestFindByID_NotFound verifies the typed 404 error.
*/
func TestFindByID_NotFound(t *testing.T) {
	repo, err := content.NewEmbeddedRepository()
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), "999")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestLoadFixture_Invalid covers the rules enforced on startup.
*/
func TestLoadFixture_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "missing title",
			yaml:    "items:\n  - id: \"1\"\n    type: manga\n    status: ongoing\n",
			message: "title",
		},
		{
			name:    "unknown category",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: comic\n    status: ongoing\n",
			message: "Unknown category",
		},
		{
			name:    "rating out of range",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: manga\n    status: ongoing\n    average_rating: 5.5\n",
			message: "average_rating",
		},
		{
			name:    "rating precision",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: manga\n    status: ongoing\n    average_rating: 4.25\n",
			message: "At most one decimal place",
		},
		{
			name:    "duplicate genre",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: manga\n    status: ongoing\n    genres: [Action, action]\n",
			message: "Duplicate entry",
		},
		{
			name:    "negative chapters",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: manga\n    status: ongoing\n    published_chapters: -1\n",
			message: "published_chapters",
		},
		{
			name:    "duplicate id",
			yaml:    "items:\n  - {id: \"1\", title: A, type: manga, status: ongoing}\n  - {id: \"1\", title: B, type: anime, status: ongoing}\n",
			message: "duplicate item id",
		},
		{
			name:    "title too long",
			yaml:    "items:\n  - id: \"1\"\n    title: " + strings.Repeat("x", content.MaxTitleLength+1) + "\n    type: manga\n    status: ongoing\n",
			message: "Maximum 200 characters",
		},
		{
			name:    "implausible year",
			yaml:    "items:\n  - id: \"1\"\n    title: A\n    type: manga\n    status: ongoing\n    year_published: 1500\n",
			message: "year_published",
		},
		{
			name:    "unknown field",
			yaml:    "items:\n  - {id: \"1\", title: A, type: manga, status: ongoing, publisher: X}\n",
			message: "publisher",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := content.LoadFixture(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

/*
TestLoadFixture_OtherStatus accepts statuses outside the named pair.
*/
func TestLoadFixture_OtherStatus(t *testing.T) {
	repo, err := content.LoadFixture(strings.NewReader("items:\n  - {id: \"x\", title: X, type: novel, status: hiatus}\n"))
	require.NoError(t, err)

	item, err := repo.FindByID(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, item.Status.IsKnown())
	assert.Nil(t, item.Rating)
}

/*
TestLoadFixture_Empty yields an empty catalog.
*/
func TestLoadFixture_Empty(t *testing.T) {
	repo, err := content.LoadFixture(strings.NewReader(""))
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
