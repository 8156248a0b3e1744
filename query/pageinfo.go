package q

// Flag is a three-valued page marker. FlagUnknown means the rows the
// assembler saw could not confirm the flag either way; callers that need a
// plain boolean can treat it however suits their API.
type Flag int8

const (
	FlagFalse Flag = iota
	FlagTrue
	FlagUnknown
)

// Bool collapses the flag to a boolean, with FlagUnknown reading as false.
func (f Flag) Bool() bool {
	return f == FlagTrue
}

func (f Flag) value() any {
	if f == FlagUnknown {
		return nil
	}
	return f == FlagTrue
}

// PageInfo summarises a page's boundaries: the cursors of its first and
// last records, and whether pages exist either side of it. Both cursors are
// nil when the page is empty.
type PageInfo struct {
	StartCursor     Cursor
	EndCursor       Cursor
	HasPreviousPage Flag
	HasNextPage     Flag
}

// ToMap renders the page info in the shape actions return to callers.
// Absent cursors and unknown flags render as nil.
func (pi PageInfo) ToMap() map[string]any {
	var start, end any
	if len(pi.StartCursor) > 0 {
		start = pi.StartCursor
	}
	if len(pi.EndCursor) > 0 {
		end = pi.EndCursor
	}

	return map[string]any{
		"startCursor":     start,
		"endCursor":       end,
		"hasPreviousPage": pi.HasPreviousPage.value(),
		"hasNextPage":     pi.HasNextPage.value(),
	}
}
