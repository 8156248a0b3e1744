package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	q "github.com/riverline/pagekit/query"
)

// A Source executes keyset-paginated queries against a single table,
// honouring the over-fetch sizes and cursor bounds the pagination core
// hands it. Rows come back as maps keyed by column name, so it satisfies
// q.Fetcher for map records.
//
// Cursor bounds are applied as a row-value comparison against the ordering
// columns, which requires every ordering column to share one direction.
// Filters are applied as column equality.
type Source struct {
	orm       *gorm.DB
	table     string
	inclusive bool
}

func NewSource(orm *gorm.DB, table string) *Source {
	return &Source{orm: orm, table: table}
}

// InclusiveBounds makes cursor comparisons re-include the pivot row, using
// >= and <= instead of > and <. The assembler detects the re-returned pivot
// and drops it, so page output is identical either way.
func (s *Source) InclusiveBounds() *Source {
	return &Source{orm: s.orm, table: s.table, inclusive: true}
}

func (s *Source) Fetch(ctx context.Context, params q.FetchParams) ([]map[string]any, error) {
	if len(params.OrderBy) == 0 {
		return nil, errors.New("a keyset fetch requires an ordering")
	}

	desc := params.OrderBy[0].Desc
	for _, order := range params.OrderBy[1:] {
		if order.Desc != desc {
			return nil, errors.New("mixed sort directions are not supported for keyset fetches")
		}
	}

	backward := len(params.Before) > 0

	tx := s.orm.WithContext(ctx).Table(s.table)
	if len(params.Filters) > 0 {
		tx = tx.Where(params.Filters)
	}

	columns := lo.Map(params.OrderBy, func(order q.OrderBy, _ int) string {
		return order.Column
	})

	if len(params.After) > 0 {
		clause, values := cursorClause(columns, params.After, desc, false, s.inclusive)
		tx = tx.Where(clause, values...)
	} else if backward {
		clause, values := cursorClause(columns, params.Before, desc, true, s.inclusive)
		tx = tx.Where(clause, values...)
	}

	// A backward fetch runs with the ordering flipped so LIMIT takes the
	// rows adjacent to the pivot, then restores ascending request order
	// before returning.
	tx = tx.Order(orderClause(params.OrderBy, backward))

	rows := []map[string]any{}
	if err := tx.Limit(params.Limit).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "fetching page window")
	}

	if backward {
		rows = lo.Reverse(rows)
	}

	return rows, nil
}

func (s *Source) Count(ctx context.Context, params q.FetchParams) (int64, error) {
	tx := s.orm.WithContext(ctx).Table(s.table)
	if len(params.Filters) > 0 {
		tx = tx.Where(params.Filters)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "counting result set")
	}

	return count, nil
}

// cursorClause builds a row-value comparison bounding the fetch at the
// cursor, e.g. (created_at, id) > (?, ?).
func cursorClause(columns []string, cursor q.Cursor, desc, backward, inclusive bool) (string, []any) {
	// Moving forward through an ascending order means greater-than, and
	// every flipped aspect (backward, descending) inverts the operator.
	op := "<"
	if backward == desc {
		op = ">"
	}
	if inclusive {
		op += "="
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cursor)), ", ")
	clause := fmt.Sprintf("(%s) %s (%s)", strings.Join(columns, ", "), op, placeholders)

	return clause, []any(cursor)
}

func orderClause(orderBy []q.OrderBy, flipped bool) string {
	directives := lo.Map(orderBy, func(order q.OrderBy, _ int) string {
		if order.Desc != flipped {
			return order.Column + " DESC"
		}
		return order.Column + " ASC"
	})

	return strings.Join(directives, ", ")
}
