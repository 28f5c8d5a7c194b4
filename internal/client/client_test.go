// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-reader/internal/client"
	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/core/content"
)

// newAPI serves the real handlers the way cmd/api mounts them.
func newAPI(t *testing.T) *client.Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog, err := content.NewEmbeddedRepository()
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		api.Mount("/content", content.NewHandler(content.NewService(catalog, logger)).Routes())
		chapter.NewHandler(chapter.NewService(chapter.NewMockRepository(catalog, chapter.FixedCounter(13)), logger)).RegisterRoutes(api)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return client.New(server.URL+"/api", 5*time.Second, logger)
}

/*
TestClient_ListContent verifies query encoding and the listing envelope.
*/
func TestClient_ListContent(t *testing.T) {
	api := newAPI(t)

	listing, err := api.ListContent(context.Background(), client.Query{Category: "manga"})
	require.NoError(t, err)
	require.Len(t, listing.Items, 2)
	assert.Equal(t, "2", listing.Items[0].ID)
	assert.False(t, listing.HasMore)

	listing, err = api.ListContent(context.Background(), client.Query{Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, listing.Items, 3)
	assert.Equal(t, "4", listing.Items[0].ID)
	assert.True(t, listing.HasMore)
	assert.Equal(t, 8, listing.Total)

	listing, err = api.ListContent(context.Background(), client.Query{Search: "pokémon"})
	require.NoError(t, err)
	assert.NotNil(t, listing.Items)
	assert.Empty(t, listing.Items)
}

/*
TestClient_GetContent covers success and the typed 404.
*/
func TestClient_GetContent(t *testing.T) {
	api := newAPI(t)

	item, err := api.GetContent(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Tower of God", item.Title)

	_, err = api.GetContent(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	var statusError *client.StatusError
	require.True(t, errors.As(err, &statusError))
	assert.Equal(t, "Content not found", statusError.Message)
	assert.Equal(t, "NOT_FOUND", statusError.Code)
}

/*
TestClient_ChaptersAndPages verifies the reader's two routes.
*/
func TestClient_ChaptersAndPages(t *testing.T) {
	api := newAPI(t)

	chapters, err := api.ListChapters(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, chapters, 179)

	pages, err := api.ListPages(context.Background(), chapters[0].ID)
	require.NoError(t, err)
	require.Len(t, pages, 13)
	assert.Equal(t, 1, pages[0].PageNumber)
	assert.Equal(t, "1-ch-1-page-1", pages[0].ID)
}

/*
TestClient_Failures covers server errors and undecodable bodies.
*/
func TestClient_Failures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/content" {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error":"Failed to fetch contents","code":"INTERNAL_ERROR"}`))
			return
		}
		_, _ = writer.Write([]byte(`not json`))
	}))
	t.Cleanup(server.Close)

	api := client.New(server.URL, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := api.ListContent(context.Background(), client.Query{})
	var statusError *client.StatusError
	require.True(t, errors.As(err, &statusError))
	assert.Equal(t, http.StatusInternalServerError, statusError.StatusCode)
	assert.Contains(t, err.Error(), "Failed to fetch contents")

	_, err = api.ListChapters(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	assert.False(t, client.IsNotFound(err))
}
