package q

// A Page describes which window you want from an ordered list of records,
// in the style of this "Connection" pattern:
// https://relay.dev/graphql/connections.htm
//
// Consider for example, that you previously fetched a page of 10 records
// and from that previous response you also knew the cursor of the last of
// those 10 records. Armed with that information you can ask for the next
// page of 10 records by setting Limit to 10, and After to that cursor.
//
// To move backwards, set Before instead. At most one of After and Before
// may be set; a nil or empty cursor counts as absent.
//
// When you have no prior positional context leave both cursors empty. This
// gives you the first Limit records.
type Page struct {
	Limit  int
	After  Cursor
	Before Cursor
}

// HasCursor reports whether the page is bounded by a cursor in either
// direction.
func (p Page) HasCursor() bool {
	return len(p.After) > 0 || len(p.Before) > 0
}
