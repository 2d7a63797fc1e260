package edgar

import "context"

// Page is a single page of a cursor-paginated collection.
type Page[T any] struct {
	Items []T `json:"items"`

	// NextCursor is the opaque token for the following page. It is echoed
	// back to the server verbatim and never inspected client-side.
	NextCursor string `json:"nextCursor"`

	HasMore bool `json:"hasMore"`
}

// pageFunc fetches one page for the given cursor. An empty cursor requests
// the first page.
type pageFunc[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// Iter walks a paginated collection one item at a time in Scanner style:
//
//	it := client.Filings.Iterate(params)
//	for it.Next(ctx) {
//		filing := it.Item()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Pages are fetched lazily. The next HTTP request is only issued once every
// item of the current page has been consumed and another item is demanded,
// so at most one request is ever in flight. An Iter is single-use and not
// safe for concurrent use; call Iterate again to restart.
type Iter[T any] struct {
	fetch   pageFunc[T]
	items   []T
	pos     int
	current T
	cursor  string
	started bool
	done    bool
	err     error
}

func newIter[T any](fetch pageFunc[T]) *Iter[T] {
	return &Iter[T]{fetch: fetch}
}

// Next advances to the next item, fetching a new page when the buffered one
// is exhausted. It returns false when the collection ends or an error
// occurs; check Err afterwards.
func (it *Iter[T]) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}

	for it.pos >= len(it.items) {
		if it.done {
			return false
		}
		if it.started && it.cursor == "" {
			// hasMore was true but the server gave us nothing to continue
			// with; re-requesting would loop on the first page.
			it.err = ErrMissingCursor
			return false
		}

		page, err := it.fetch(ctx, it.cursor)
		if err != nil {
			it.err = err
			return false
		}

		it.started = true
		it.items = page.Items
		it.pos = 0
		it.cursor = page.NextCursor
		it.done = !page.HasMore
	}

	it.current = it.items[it.pos]
	it.pos++
	return true
}

// Item returns the item produced by the most recent successful Next.
func (it *Iter[T]) Item() T {
	return it.current
}

// Err returns the error that terminated iteration, if any.
func (it *Iter[T]) Err() error {
	return it.err
}

// Collect drains the iterator into a slice. Items retrieved before a
// failing page are discarded along with the error.
func (it *Iter[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for it.Next(ctx) {
		items = append(items, it.Item())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
