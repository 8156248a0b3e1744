package actions

import (
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	q "github.com/riverline/pagekit/query"
)

var tracer = otel.Tracer("github.com/riverline/pagekit/runtime/actions")

// List fetches one page of records from the scope's source and assembles it
// into the response shape callers receive: the trimmed results plus page
// metadata.
func List[T any](scope *Scope[T], input map[string]any) (map[string]any, error) {
	ctx, span := tracer.Start(scope.Context, "List")
	defer span.End()
	scope = scope.WithContext(ctx)

	// Work out the page window and the over-fetch that serves it.
	page, params, err := GenerateFetchParams(scope, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("page.limit", page.Limit),
		attribute.Int("fetch.size", params.Limit),
	)

	// Execute the data source request with results
	records, err := scope.Source.Fetch(scope.Context, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	totalCount, err := scope.Source.Count(scope.Context, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	connection := q.Assemble(records, int(totalCount), page, scope.Cursors)

	log.WithFields(log.Fields{
		"fetched":  len(records),
		"returned": len(connection.Edges),
		"total":    connection.TotalCount,
	}).Debug("assembled page")

	return map[string]any{
		"results":    connection.Edges,
		"totalCount": connection.TotalCount,
		"pageInfo":   connection.PageInfo.ToMap(),
	}, nil
}

// GenerateFetchParams casts the raw input into a processed Page and the
// fetch parameters the data source needs to produce its window.
func GenerateFetchParams[T any](scope *Scope[T], input map[string]any) (q.Page, q.FetchParams, error) {
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
		return q.Page{}, q.FetchParams{}, err
	}

	page, err := CastPage(input, scope.Cursors, scope.Limits)
	if err != nil {
		return page, q.FetchParams{}, err
	}

	params := q.FetchParams{
		Limit:   q.FetchSize(page.Limit, len(page.After) > 0, len(page.Before) > 0),
		After:   page.After,
		Before:  page.Before,
		OrderBy: orderBy,
		Filters: where,
	}

	return page, params, nil
}
