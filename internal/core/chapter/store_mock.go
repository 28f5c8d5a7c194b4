// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"strconv"

	"github.com/taibuivan/yomira-reader/internal/platform/constants"
)

// imagePool holds the placeholder page images, selected by page number.
var imagePool = []string{
	"https://images.unsplash.com/photo-1618519764620-7403abdbdfe9?w=800&h=1200&fit=crop",
	"https://images.unsplash.com/photo-1612036782180-6f0b6cd846fe?w=800&h=1200&fit=crop",
	"https://images.unsplash.com/photo-1578632767115-351597cf2477?w=800&h=1200&fit=crop",
	"https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=800&h=1200&fit=crop",
	"https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=800&h=1200&fit=crop",
}

// # Generated Repository

// mockRepository implements [Repository] by generating chapters and pages on demand.
type mockRepository struct {
	totals  TotalSource
	counter PageCounter
}

// NewMockRepository constructs a generated [Repository].
//
// Content ids without a positive configured total get
// [constants.DefaultChapterCount] chapters.
func NewMockRepository(totals TotalSource, counter PageCounter) Repository {
	return &mockRepository{totals: totals, counter: counter}
}

// ListByContent implements [Repository].
func (repository *mockRepository) ListByContent(context context.Context, contentID string) ([]*Chapter, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	total, ok := repository.totals.PublishedChapters(context, contentID)
	if !ok || total <= 0 {
		total = constants.DefaultChapterCount
	}

	chapters := make([]*Chapter, 0, total)
	for number := 1; number <= total; number++ {
		chapters = append(chapters, &Chapter{
			ID:        ChapterID(contentID, number),
			ContentID: contentID,
			Number:    number,
			Title:     chapterTitle(number),
		})
	}
	return chapters, nil
}

// ListPages implements [Repository].
func (repository *mockRepository) ListPages(context context.Context, chapterID string) ([]*Page, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	count := repository.counter.Pages(chapterID)

	pages := make([]*Page, 0, count)
	for number := 1; number <= count; number++ {
		pages = append(pages, &Page{
			ID:         PageID(chapterID, number),
			ChapterID:  chapterID,
			PageNumber: number,
			ImageURL:   imagePool[number%len(imagePool)],
		})
	}
	return pages, nil
}

func chapterTitle(number int) string {
	return "Chapter " + strconv.Itoa(number)
}
