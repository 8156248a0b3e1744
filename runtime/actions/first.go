package actions

import (
	q "github.com/riverline/pagekit/query"
)

// First fetches the first record matching the input, or nil when there is
// none. It is a one-record page with the metadata discarded, so no cursor
// keys are read from the input.
func First[T any](scope *Scope[T], input map[string]any) (*T, error) {
	ctx, span := tracer.Start(scope.Context, "First")
	defer span.End()
	scope = scope.WithContext(ctx)

	where, ok := input["where"].(map[string]any)
	if !ok {
		where = map[string]any{}
	}

	rawOrderBy, ok := input["orderBy"].([]any)
	if !ok {
		rawOrderBy = []any{}
	}

	orderBy, err := q.ParseOrderBy(rawOrderBy)
	if err != nil {
		return nil, err
	}

	records, err := scope.Source.Fetch(scope.Context, q.FetchParams{
		Limit:   1,
		OrderBy: orderBy,
		Filters: where,
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	record := records[0]
	return &record, nil
}
