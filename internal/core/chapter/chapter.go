// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter provides the domain models and mock delivery of chapters and
their image pages.

Chapters are generated per content id from the catalog's published chapter
totals. Pages are generated per request, 10 to 15 per chapter, each pointing
at an opaque image URL.

# Core Responsibility

  - Serialisation: Contiguous [Chapter] numbering from 1 to N.
  - Content Delivery: The [Page] structure consumed by the reader.
*/
package chapter

import "fmt"

// # Chapter Aggregate

// Chapter is one readable unit of a content item.
type Chapter struct {
	ID        string `json:"id"`
	ContentID string `json:"content_id"`
	Number    int    `json:"number"` // 1..N, contiguous
	Title     string `json:"title"`
}

// # Image Delivery

// Page is a single image page within a [Chapter].
type Page struct {
	ID         string `json:"id"`
	ChapterID  string `json:"chapter_id"`
	PageNumber int    `json:"page_number"` // 1..M
	ImageURL   string `json:"image_url"`
}

// PageList is the payload of the pages route.
type PageList struct {
	ChapterID string  `json:"chapter_id"`
	Pages     []*Page `json:"pages"`
}

// # Identifiers

// ChapterID builds the identifier of chapter n of a content item.
func ChapterID(contentID string, number int) string {
	return fmt.Sprintf("%s-ch-%d", contentID, number)
}

// PageID builds the identifier of page n of a chapter.
func PageID(chapterID string, number int) string {
	return fmt.Sprintf("%s-page-%d", chapterID, number)
}
