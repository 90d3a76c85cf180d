package combine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptySelection is returned for blank or whitespace-only input.
var ErrEmptySelection = errors.New("empty selection")

// SelectionError reports the first token that is not a usable 1-based index.
// Token holds the offending input verbatim.
type SelectionError struct {
	Token string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid number: %s", e.Token)
}

// ParseSelection parses user-entered item numbers into zero-based indices.
// Commas, semicolons, and whitespace separate tokens interchangeably; every
// token must be a base-10 integer in [1, max]. The first bad token aborts the
// parse with no partial result. Input order and duplicates are preserved,
// since tokens map 1:1 to displayed rows.
func ParseSelection(input string, max int) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptySelection
	}

	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > max {
			return nil, &SelectionError{Token: tok}
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}
