package ingest

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnparseableStore = errors.New("unparseable store number")

// ParseStoreNumber extracts the numeric store identifier from either a
// bare number or a composite value like "79 - Syracuse (Electronics Pkwy)".
// The composite form is split on the first " - " and the prefix parsed as
// an integer; otherwise every non-digit character is stripped first.
func ParseStoreNumber(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, ErrUnparseableStore
	}

	if prefix, _, found := strings.Cut(value, " - "); found {
		number, err := strconv.Atoi(strings.TrimSpace(prefix))
		if err != nil {
			return 0, ErrUnparseableStore
		}
		return number, nil
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	if digits == "" {
		return 0, ErrUnparseableStore
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ErrUnparseableStore
	}
	return number, nil
}
