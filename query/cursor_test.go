package q_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	q "github.com/riverline/pagekit/query"
)

func TestCursorEqual(t *testing.T) {
	assert.True(t, q.Cursor{}.Equal(q.Cursor{}))
	assert.True(t, q.Cursor{"a", 1}.Equal(q.Cursor{"a", 1}))
	assert.False(t, q.Cursor{"a", 1}.Equal(q.Cursor{"a", 2}))
	assert.False(t, q.Cursor{"a"}.Equal(q.Cursor{"a", 1}))
	assert.False(t, q.Cursor{1}.Equal(q.Cursor{"1"}))
}

func TestValidateCursor(t *testing.T) {
	assert.True(t, q.ValidateCursor(q.Cursor{}, []q.Predicate{}))
	assert.False(t, q.ValidateCursor(q.Cursor{"x"}, []q.Predicate{}))
	assert.False(t, q.ValidateCursor(q.Cursor{}, []q.Predicate{q.IsString}))

	preds := []q.Predicate{q.IsString, q.IsInt}
	assert.True(t, q.ValidateCursor(q.Cursor{"a", 7}, preds))
	assert.False(t, q.ValidateCursor(q.Cursor{7, "a"}, preds))
	assert.False(t, q.ValidateCursor(q.Cursor{"a"}, preds))
}

func TestCursorPolicyValidate(t *testing.T) {
	policy := q.CursorPolicy[string]{
		Generate:   func(s string) q.Cursor { return q.Cursor{s} },
		Predicates: []q.Predicate{q.IsString},
	}

	assert.True(t, policy.Validate(q.Cursor{"abc"}))
	assert.False(t, policy.Validate(q.Cursor{123}))
	assert.False(t, policy.Validate(q.Cursor{"abc", "def"}))
}

func TestPredicates(t *testing.T) {
	assert.True(t, q.IsString("x"))
	assert.False(t, q.IsString(1))

	assert.True(t, q.IsInt(1))
	assert.True(t, q.IsInt(int64(1)))
	// JSON numbers arrive as float64; whole ones count as ints.
	assert.True(t, q.IsInt(float64(3)))
	assert.False(t, q.IsInt(3.5))
	assert.False(t, q.IsInt("3"))

	assert.True(t, q.IsTime(time.Now()))
	assert.False(t, q.IsTime("2024-01-01"))

	assert.True(t, q.NotNil(0))
	assert.False(t, q.NotNil(nil))
}

func TestParseOrderBy(t *testing.T) {
	orderBy, err := q.ParseOrderBy([]any{
		map[string]any{"createdAt": "asc"},
		map[string]any{"id": "desc"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []q.OrderBy{{Column: "createdAt"}, {Column: "id", Desc: true}}, orderBy)

	_, err = q.ParseOrderBy([]any{"createdAt"})
	assert.Error(t, err)

	_, err = q.ParseOrderBy([]any{map[string]any{"createdAt": "sideways"}})
	assert.Error(t, err)
}
