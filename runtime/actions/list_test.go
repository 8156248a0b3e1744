package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	q "github.com/riverline/pagekit/query"
	"github.com/riverline/pagekit/runtime/actions"
)

// stubSource pages over an in-memory ascending slice using exclusive cursor
// bounds, the way a typical query layer would.
type stubSource struct {
	tasks      []task
	lastParams q.FetchParams
}

func (s *stubSource) Fetch(ctx context.Context, params q.FetchParams) ([]task, error) {
	s.lastParams = params

	window := s.tasks
	if len(params.After) > 0 {
		window = []task{}
		for _, record := range s.tasks {
			if record.ID > params.After[0].(int) {
				window = append(window, record)
			}
		}
	} else if len(params.Before) > 0 {
		window = []task{}
		for _, record := range s.tasks {
			if record.ID < params.Before[0].(int) {
				window = append(window, record)
			}
		}
		if len(window) > params.Limit {
			window = window[len(window)-params.Limit:]
		}
	}

	if len(window) > params.Limit {
		window = window[:params.Limit]
	}
	return window, nil
}

func (s *stubSource) Count(ctx context.Context, params q.FetchParams) (int64, error) {
	return int64(len(s.tasks)), nil
}

func fiveTasks() *stubSource {
	return &stubSource{tasks: []task{
		{ID: 1, Name: "one"},
		{ID: 2, Name: "two"},
		{ID: 3, Name: "three"},
		{ID: 4, Name: "four"},
		{ID: 5, Name: "five"},
	}}
}

func newScope(source *stubSource) *actions.Scope[task] {
	return actions.NewScope[task](context.Background(), source, taskCursors(), testLimits())
}

func TestListFirstPage(t *testing.T) {
	source := fiveTasks()

	response, err := actions.List(newScope(source), map[string]any{"limit": 2})
	require.NoError(t, err)

	results := response["results"].([]task)
	assert.Equal(t, []task{{ID: 1, Name: "one"}, {ID: 2, Name: "two"}}, results)

	pageInfo := response["pageInfo"].(map[string]any)
	assert.Equal(t, q.Cursor{1}, pageInfo["startCursor"])
	assert.Equal(t, q.Cursor{2}, pageInfo["endCursor"])
	assert.Equal(t, false, pageInfo["hasPreviousPage"])
	assert.Equal(t, true, pageInfo["hasNextPage"])

	// One extra row to detect the next page.
	assert.Equal(t, 3, source.lastParams.Limit)
}

func TestListAfterCursor(t *testing.T) {
	source := fiveTasks()

	response, err := actions.List(newScope(source), map[string]any{
		"limit": 2,
		"after": []any{2},
	})
	require.NoError(t, err)

	results := response["results"].([]task)
	assert.Equal(t, []task{{ID: 3, Name: "three"}, {ID: 4, Name: "four"}}, results)

	pageInfo := response["pageInfo"].(map[string]any)
	assert.Equal(t, true, pageInfo["hasNextPage"])
	// An exclusive fetch cannot prove previous-page existence from its rows.
	assert.Nil(t, pageInfo["hasPreviousPage"])

	// Two spare rows when a cursor bounds the fetch.
	assert.Equal(t, 4, source.lastParams.Limit)
	assert.Equal(t, q.Cursor{2}, source.lastParams.After)
}

func TestListLastPage(t *testing.T) {
	source := fiveTasks()

	response, err := actions.List(newScope(source), map[string]any{
		"limit": 2,
		"after": []any{4},
	})
	require.NoError(t, err)

	results := response["results"].([]task)
	assert.Equal(t, []task{{ID: 5, Name: "five"}}, results)

	pageInfo := response["pageInfo"].(map[string]any)
	assert.Equal(t, false, pageInfo["hasNextPage"])
}

func TestListBeforeCursor(t *testing.T) {
	source := fiveTasks()

	response, err := actions.List(newScope(source), map[string]any{
		"limit":  2,
		"before": []any{4},
	})
	require.NoError(t, err)

	// Ascending order is preserved; never reversed.
	results := response["results"].([]task)
	assert.Equal(t, []task{{ID: 2, Name: "two"}, {ID: 3, Name: "three"}}, results)
}

func TestListPropagatesOrderingAndFilters(t *testing.T) {
	source := fiveTasks()

	_, err := actions.List(newScope(source), map[string]any{
		"limit":   2,
		"orderBy": []any{map[string]any{"id": "asc"}},
		"where":   map[string]any{"name": "one"},
	})
	require.NoError(t, err)

	assert.Equal(t, []q.OrderBy{{Column: "id"}}, source.lastParams.OrderBy)
	assert.Equal(t, map[string]any{"name": "one"}, source.lastParams.Filters)
}

func TestListTotalCount(t *testing.T) {
	source := fiveTasks()

	response, err := actions.List(newScope(source), map[string]any{"limit": 2})
	require.NoError(t, err)

	// The page carries the full result set size, not the page size.
	assert.Equal(t, 5, response["totalCount"])
	assert.Len(t, response["results"].([]task), 2)
}

func TestListInvalidCursor(t *testing.T) {
	_, err := actions.List(newScope(fiveTasks()), map[string]any{
		"after": []any{"wrong-type"},
	})
	assert.Error(t, err)
}

func TestFirst(t *testing.T) {
	source := fiveTasks()

	record, err := actions.First(newScope(source), map[string]any{
		"orderBy": []any{map[string]any{"id": "asc"}},
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, task{ID: 1, Name: "one"}, *record)
	assert.Equal(t, 1, source.lastParams.Limit)
}

func TestFirstEmpty(t *testing.T) {
	record, err := actions.First(newScope(&stubSource{}), map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, record)
}
