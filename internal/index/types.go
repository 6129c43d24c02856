package index

import "context"

// Candidate is a single match returned by an index query
type Candidate struct {
	DocumentID string
	Text       string
	Category   string
	Distance   float64
}

// Predicate restricts a query to chunks whose metadata field matches one of
// the given values. One value is an equality match, several a membership match.
type Predicate struct {
	Field  string
	Values []string
}

// Eq builds an equality predicate on a metadata field
func Eq(field, value string) *Predicate {
	return &Predicate{Field: field, Values: []string{value}}
}

// In builds a membership predicate on a metadata field.
// Returns nil when values is empty so callers can pass it straight through.
func In(field string, values []string) *Predicate {
	if len(values) == 0 {
		return nil
	}
	return &Predicate{Field: field, Values: values}
}

// Index answers nearest-neighbour queries over an embedded corpus.
type Index interface {
	// Query returns up to limit candidates ordered by ascending distance,
	// restricted to predicate when non-nil
	Query(ctx context.Context, vector []float32, predicate *Predicate, limit int) ([]Candidate, error)

	// Ping verifies the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases underlying connections
	Close()
}

// metadata fields that may appear in a predicate, mapped to storage columns
var predicateFields = map[string]string{
	"category": "category",
}
