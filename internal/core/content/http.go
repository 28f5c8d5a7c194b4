// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-reader/internal/platform/apperr"
	requestutil "github.com/taibuivan/yomira-reader/internal/platform/request"
	"github.com/taibuivan/yomira-reader/internal/platform/respond"
	"github.com/taibuivan/yomira-reader/pkg/pagination"
)

// Query parameter names accepted by the listing endpoint.
const (
	ParamContentType = "contentType"
	ParamSearch      = "search"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog discovery.
type Handler struct {
	service *Service
}

// NewHandler constructs a new content [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listContent)
	router.Get("/{id}", handler.getContent)

	return router
}

// # Content Endpoints

/*
GET /api/content.

Description: Returns one window of the filtered catalog for infinite scroll.

Request:
  - contentType: string (manga, manhwa, manhua, anime, novel, all)
  - search: string (title, author or genre substring)
  - limit: int (omitted or 0 = whole remainder; negative or malformed = 0)
  - offset: int (negative or malformed = 0; past the end = empty page)

Response:
  - 200: {data: []Item, hasMore, total}
  - 500: Failed to fetch contents
*/
func (handler *Handler) listContent(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Category: requestutil.Query(request, ParamContentType),
		Search:   requestutil.Query(request, ParamSearch),
	}

	items, window, err := handler.service.ListContent(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, apperr.Failed("Failed to fetch contents", err))
		return
	}

	respond.Listing(writer, items, window)
}

/*
GET /api/content/{id}.

Description: Returns a single catalog item for the detail page.

Request:
  - id: string

Response:
  - 200: {data: Item}
  - 404: Content not found
*/
func (handler *Handler) getContent(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetContent(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		if !apperr.IsAppError(err) {
			err = apperr.Failed("Failed to fetch content", err)
		}
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}
