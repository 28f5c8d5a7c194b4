// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// # Chapter & Page Data Access

// Repository defines the data access contract for chapters and pages.
type Repository interface {

	/*
		ListByContent returns all chapters of a content item, ordered by number.

		Parameters:
		  - context: context.Context
		  - contentID: string

		Returns:
		  - []*Chapter: Chapters 1..N
		  - error: Storage failures
	*/
	ListByContent(context context.Context, contentID string) ([]*Chapter, error)

	/*
		ListPages returns the pages of a chapter, ordered by page number.

		Parameters:
		  - context: context.Context
		  - chapterID: string

		Returns:
		  - []*Page: Pages 1..M
		  - error: Storage failures
	*/
	ListPages(context context.Context, chapterID string) ([]*Page, error)
}

// TotalSource reports the configured chapter total of a content item.
//
// The content fixture repository satisfies it.
type TotalSource interface {
	PublishedChapters(context context.Context, contentID string) (int, bool)
}
