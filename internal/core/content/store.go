// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// # Catalog Data Access

// Repository defines the data access contract for catalog items.
type Repository interface {

	/*
		List returns every catalog item in fixture order.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Item: The whole catalog
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Item, error)

	/*
		FindByID returns the item with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Item: The item
		  - error: apperr NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Item, error)

	/*
		PublishedChapters returns how many chapters exist for a content id.

		Returns:
		  - int: The configured chapter total
		  - bool: false when the id has no configured total
	*/
	PublishedChapters(context context.Context, id string) (int, bool)
}
