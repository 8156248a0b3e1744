package q

// A Connection is a finished page: the trimmed records, the total size of
// the underlying result set, and the boundary metadata. Once built it is
// never mutated.
type Connection[T any] struct {
	Edges      []T
	TotalCount int
	PageInfo   PageInfo
}

// Assemble turns a caller-over-fetched, already-ordered window of records
// into a finished Connection.
//
// The edges must be in ascending request order and at most FetchSize long.
// That holds for Before pages too: do not pre-reverse, the tail of the
// slice is treated as the side nearest the pivot.
//
// The fetch that produced the edges may have been bounded either exclusive
// of the pivot record (the usual case) or inclusive of it, depending on
// which comparison operators the query layer used. Rather than mandate one
// convention, Assemble observes whether the boundary row's cursor matches
// the request cursor and drops the pivot when it does. A re-returned pivot
// also proves a page exists on its side of the window; when the pivot is
// absent the matching flag cannot be derived from the rows and is left
// FlagUnknown.
//
// totalCount is the size of the full result set, supplied by the caller. It
// is carried through untouched.
func Assemble[T any](edges []T, totalCount int, page Page, policy CursorPolicy[T]) Connection[T] {
	if len(edges) == 0 {
		return emptyConnection[T](totalCount)
	}

	hasPrevious := FlagFalse
	hasNext := FlagFalse

	switch {
	case len(page.After) > 0:
		if policy.Generate(edges[0]).Equal(page.After) {
			// Inclusive fetch: the pivot came back as the first row.
			edges = edges[1:]
			hasPrevious = FlagTrue
		} else {
			// Exclusive fetch: rows start strictly after the pivot, so
			// previous-page existence is not derivable from them.
			if len(edges) > page.Limit+1 {
				edges = edges[:page.Limit+1]
			}
			hasPrevious = FlagUnknown
		}
		if len(edges) > page.Limit {
			edges = edges[:page.Limit]
			hasNext = FlagTrue
		}

	case len(page.Before) > 0:
		if policy.Generate(edges[len(edges)-1]).Equal(page.Before) {
			// Inclusive fetch: the pivot came back as the last row.
			edges = edges[:len(edges)-1]
			hasNext = FlagTrue
		} else {
			if len(edges) > page.Limit+1 {
				edges = edges[len(edges)-page.Limit-1:]
			}
			hasNext = FlagUnknown
		}
		if len(edges) > page.Limit {
			edges = edges[len(edges)-page.Limit:]
			hasPrevious = FlagTrue
		}

	default:
		// First page of a fresh query; nothing precedes it.
		if len(edges) > page.Limit {
			edges = edges[:page.Limit]
			hasNext = FlagTrue
		}
	}

	if len(edges) == 0 {
		return emptyConnection[T](totalCount)
	}

	return Connection[T]{
		Edges:      edges,
		TotalCount: totalCount,
		PageInfo: PageInfo{
			StartCursor:     policy.Generate(edges[0]),
			EndCursor:       policy.Generate(edges[len(edges)-1]),
			HasPreviousPage: hasPrevious,
			HasNextPage:     hasNext,
		},
	}
}

func emptyConnection[T any](totalCount int) Connection[T] {
	return Connection[T]{
		Edges:      []T{},
		TotalCount: totalCount,
	}
}
