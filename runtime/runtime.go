package runtime

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	q "github.com/riverline/pagekit/query"
	"github.com/riverline/pagekit/runtime/actions"
)

var Version string

func init() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(logLevel())
}

func GetVersion() string {
	return Version
}

// A Paginator bundles a data source, cursor policy and limit configuration
// so callers can page through a result set without assembling a Scope per
// request.
type Paginator[T any] struct {
	source  q.Fetcher[T]
	cursors q.CursorPolicy[T]
	limits  q.LimitConfig
}

func NewPaginator[T any](source q.Fetcher[T], cursors q.CursorPolicy[T], limits q.LimitConfig) *Paginator[T] {
	return &Paginator[T]{
		source:  source,
		cursors: cursors,
		limits:  limits,
	}
}

// List returns one page of records plus its page metadata.
func (p *Paginator[T]) List(ctx context.Context, input map[string]any) (map[string]any, error) {
	return actions.List(actions.NewScope(ctx, p.source, p.cursors, p.limits), input)
}

// First returns the first matching record, or nil when there is none.
func (p *Paginator[T]) First(ctx context.Context, input map[string]any) (*T, error) {
	return actions.First(actions.NewScope(ctx, p.source, p.cursors, p.limits), input)
}

func logLevel() log.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.ErrorLevel
	}
}
