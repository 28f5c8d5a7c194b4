// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-reader/internal/platform/apperr"
	requestutil "github.com/taibuivan/yomira-reader/internal/platform/request"
	"github.com/taibuivan/yomira-reader/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter and page delivery.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches chapter and page endpoints to the root API router.
// They span both /chapters/... and /chapter/... prefixes.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/chapters/{contentID}", handler.ListChapters)
	api.Get("/chapter/{chapterID}/pages", handler.ListPages)
}

// # Chapter Retrieval

/*
GET /api/chapters/{contentID}.

Description: Returns every chapter of a content item. Unknown ids receive
the default roster.

Request:
  - contentID: string

Response:
  - 200: {data: []Chapter}
  - 500: Failed to fetch chapters
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.service.ListChapters(request.Context(), requestutil.ID(request, "contentID"))
	if err != nil {
		respond.Error(writer, request, apperr.Failed("Failed to fetch chapters", err))
		return
	}

	respond.OK(writer, chapters)
}

// # Page Retrieval

/*
GET /api/chapter/{chapterID}/pages.

Description: Returns the image pages of a chapter.

Request:
  - chapterID: string

Response:
  - 200: {data: {chapter_id, pages: []Page}}
  - 500: Failed to fetch pages
*/
func (handler *Handler) ListPages(writer http.ResponseWriter, request *http.Request) {
	pages, err := handler.service.ListPages(request.Context(), requestutil.ID(request, "chapterID"))
	if err != nil {
		respond.Error(writer, request, apperr.Failed("Failed to fetch pages", err))
		return
	}

	respond.OK(writer, pages)
}
