package domain

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page bounds a list or search result set with a row limit and offset.
type Page struct {
	Limit  int
	Offset int
}

func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit}
}

// Normalized coerces out-of-range bounds back to their defaults rather than
// rejecting them, matching the lenient behavior of the query endpoints.
func (p Page) Normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
