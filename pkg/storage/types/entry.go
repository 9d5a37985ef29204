package types

// Entry is one item returned by a single-level storage listing, kept close to
// the raw API shape: object listings carry an identifier (ETag) and a size,
// directory placeholders carry neither.
type Entry struct {
	Name     string
	ID       string
	SizeHint *int64
}

// IsFile infers file-vs-directory from the listing shape: an entry is a file
// if it carries an identifier or a size hint. The listing API has no
// authoritative type field, so this predicate is the single place the
// heuristic lives.
func (e Entry) IsFile() bool {
	return e.ID != "" || e.SizeHint != nil
}
