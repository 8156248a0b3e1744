package q

import (
	"context"
	"fmt"
	"strings"
)

// OrderBy is a single sort directive, matching one position of the cursors
// generated for the result set.
type OrderBy struct {
	Column string
	Desc   bool
}

// FetchParams carries everything a Fetcher needs to produce the
// over-fetched window that Assemble consumes.
//
// Limit here is the fetch size (see FetchSize), not the page limit. At most
// one of After and Before is set; the Fetcher must return rows in ascending
// request order either way, bounded by the cursor on the appropriate side.
// Whether the bound is inclusive or exclusive of the pivot record is the
// Fetcher's choice; assembly tolerates both.
type FetchParams struct {
	Limit   int
	After   Cursor
	Before  Cursor
	OrderBy []OrderBy
	Filters map[string]any
}

// A Fetcher executes the actual query for a page window. Implementations
// wrap whatever storage layer holds the records; the pagination core never
// touches storage itself.
type Fetcher[T any] interface {
	// Fetch returns up to params.Limit records honouring the ordering,
	// cursor bound and filters in params.
	Fetch(ctx context.Context, params FetchParams) ([]T, error)

	// Count returns the size of the full result set for params.Filters,
	// ignoring pagination.
	Count(ctx context.Context, params FetchParams) (int64, error)
}

// ParseOrderBy converts request ordering of the form
// [{"createdAt": "asc"}, {"id": "desc"}] into sort directives.
func ParseOrderBy(orderBy []any) ([]OrderBy, error) {
	out := []OrderBy{}

	for _, item := range orderBy {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("orderBy entry %v is not in correct format", item)
		}

		for column, direction := range obj {
			dir, ok := direction.(string)
			if !ok {
				return nil, fmt.Errorf("ordering direction %v for '%s' is not a string", direction, column)
			}

			switch strings.ToLower(dir) {
			case "asc":
				out = append(out, OrderBy{Column: column})
			case "desc":
				out = append(out, OrderBy{Column: column, Desc: true})
			default:
				return nil, fmt.Errorf("unknown ordering direction '%s' for '%s'", dir, column)
			}
		}
	}

	return out, nil
}
