package actions

import (
	"fmt"
	"strconv"

	q "github.com/riverline/pagekit/query"
	"github.com/riverline/pagekit/runtime/common"
)

// CastPage extracts page mandate information from the given map and uses it
// to compose a processed Page.
//
// The limit is treated as a hint and resolved through the limit
// configuration; cursors are untrusted input and are validated against the
// scope's cursor policy before use. Supplying both 'after' and 'before' is
// rejected rather than silently preferring one.
func CastPage[T any](args map[string]any, cursors q.CursorPolicy[T], limits q.LimitConfig) (q.Page, error) {
	page := q.Page{
		Limit: CastLimit(args, limits),
	}

	_, hasAfter := args["after"]
	_, hasBefore := args["before"]
	if hasAfter && hasBefore {
		return page, common.ErrConflictingCursors
	}

	if hasAfter {
		cursor, err := castCursor(args["after"], "after", cursors)
		if err != nil {
			return page, err
		}
		page.After = cursor
	}

	if hasBefore {
		cursor, err := castCursor(args["before"], "before", cursors)
		if err != nil {
			return page, err
		}
		page.Before = cursor
	}

	return page, nil
}

// CastLimit resolves only the page size from the given map, skipping cursor
// handling entirely. Use it where cursor semantics do not apply, for
// example batched multi-parent lookups that only need a size cap.
func CastLimit(args map[string]any, limits q.LimitConfig) int {
	var requested *int

	if limit, ok := args["limit"]; ok {
		switch v := limit.(type) {
		case int64:
			num := int(v)
			requested = &num
		case int:
			num := v
			requested = &num
		case float64:
			num := int(v)
			requested = &num
		case string:
			num, err := strconv.Atoi(v)

			if err == nil {
				requested = &num
			}
		}
	}

	return q.ResolveLimit(requested, limits)
}

func castCursor[T any](raw any, boundary string, cursors q.CursorPolicy[T]) (q.Cursor, error) {
	var cursor q.Cursor

	switch v := raw.(type) {
	case q.Cursor:
		cursor = v
	case []any:
		cursor = q.Cursor(v)
	default:
		return nil, fmt.Errorf("cannot cast this: %v to a cursor", raw)
	}

	if !cursors.Validate(cursor) {
		return nil, common.NewInvalidCursorError(boundary)
	}

	return cursor, nil
}
