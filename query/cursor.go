package q

import "time"

// A Cursor pins a record's position within an ordered result set. It holds
// one value per sort key, in the same order as the query's ordering.
//
// Cursors are opaque in-process values. If you need to hand one to the
// outside world (say as a pagination token in an API response) the encoding
// is yours to choose; nothing in this package reads or writes a serialized
// form.
//
// For pagination to behave deterministically cursors must be unique within
// a result set, which in practice means the ordering must include at least
// one unique column. That is your obligation, not something this package
// enforces.
type Cursor []any

// Equal reports whether both cursors hold the same value at every position.
// Cursor values must be comparable types.
func (c Cursor) Equal(other Cursor) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// A Predicate checks a single cursor position, typically for type shape.
type Predicate func(value any) bool

// A CursorPolicy ties together cursor generation and validation for a record
// type.
//
// Generate must be deterministic and consistent with the ordering the
// records were fetched in: the cursor for a record is the tuple of that
// record's sort-key values. Predicates guard cursors arriving from untrusted
// input, one per sort key.
type CursorPolicy[T any] struct {
	Generate   func(record T) Cursor
	Predicates []Predicate
}

// Validate reports whether an untrusted cursor has the shape this policy
// expects. A cursor with the wrong number of positions is invalid data, not
// an error.
func (p CursorPolicy[T]) Validate(cursor Cursor) bool {
	return ValidateCursor(cursor, p.Predicates)
}

// ValidateCursor checks every cursor position against its corresponding
// predicate. The two sequences must be the same length, and an empty cursor
// against no predicates is trivially valid.
func ValidateCursor(cursor Cursor, predicates []Predicate) bool {
	if len(cursor) != len(predicates) {
		return false
	}
	for i, predicate := range predicates {
		if !predicate(cursor[i]) {
			return false
		}
	}
	return true
}

// IsString accepts string cursor values.
func IsString(value any) bool {
	_, ok := value.(string)
	return ok
}

// IsInt accepts integer cursor values, including ones that arrived as JSON
// numbers.
func IsInt(value any) bool {
	switch v := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		return v == float64(int64(v))
	default:
		return false
	}
}

// IsTime accepts time.Time cursor values.
func IsTime(value any) bool {
	_, ok := value.(time.Time)
	return ok
}

// NotNil accepts any non-nil cursor value.
func NotNil(value any) bool {
	return value != nil
}
