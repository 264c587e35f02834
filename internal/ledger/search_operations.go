package ledger

import (
	"context"
	"strings"
)

// SearchElements returns every element whose title contains query as a
// case-insensitive substring, in creation order. A stand-in for future
// vector-based similarity search.
func (l *Ledger) SearchElements(ctx context.Context, query string) ([]Element, error) {
	elements, err := l.elements.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := []Element{}
	for _, element := range elements {
		if strings.Contains(strings.ToLower(element.Title), needle) {
			results = append(results, element)
		}
	}
	return results, nil
}
