package actions

import (
	"context"

	q "github.com/riverline/pagekit/query"
)

// A Scope bundles everything an action needs: the request context, the data
// source that executes queries, the cursor policy for the record type, and
// the limit configuration in force.
type Scope[T any] struct {
	Context context.Context
	Source  q.Fetcher[T]
	Cursors q.CursorPolicy[T]
	Limits  q.LimitConfig
}

func NewScope[T any](ctx context.Context, source q.Fetcher[T], cursors q.CursorPolicy[T], limits q.LimitConfig) *Scope[T] {
	return &Scope[T]{
		Context: ctx,
		Source:  source,
		Cursors: cursors,
		Limits:  limits,
	}
}

func (s *Scope[T]) WithContext(ctx context.Context) *Scope[T] {
	scope := *s
	scope.Context = ctx
	return &scope
}
