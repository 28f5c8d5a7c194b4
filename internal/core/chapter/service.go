// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service orchestrates chapter and page delivery.
type Service struct {
	chapterRepo Repository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(chapterRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		chapterRepo: chapterRepo,
		logger:      logger,
	}
}

// # Chapter Operations

/*
ListChapters returns the full chapter roster of a content item.

Parameters:
  - context: context.Context
  - contentID: string

Returns:
  - []*Chapter: Chapters ordered by number
  - error: Storage errors
*/
func (service *Service) ListChapters(context context.Context, contentID string) ([]*Chapter, error) {
	chapters, err := service.chapterRepo.ListByContent(context, contentID)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "chapters_listed",
		slog.String("content_id", contentID),
		slog.Int("count", len(chapters)),
	)
	return chapters, nil
}

// # Page Operations

/*
ListPages returns the page list of a chapter.

Description: The page count is drawn per request, so two calls for the same
chapter may disagree. Clients cache the first answer.

Parameters:
  - context: context.Context
  - chapterID: string

Returns:
  - *PageList: The chapter id and its pages
  - error: Storage errors
*/
func (service *Service) ListPages(context context.Context, chapterID string) (*PageList, error) {
	pages, err := service.chapterRepo.ListPages(context, chapterID)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "pages_listed",
		slog.String("chapter_id", chapterID),
		slog.Int("count", len(pages)),
	)
	return &PageList{ChapterID: chapterID, Pages: pages}, nil
}
