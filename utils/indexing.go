package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is a flat list of vertex indices, e.g. a triangle list index buffer
type Index []int

// AddInPlace offsets every index by val and returns I
func (I Index) AddInPlace(val int) Index {
	for i := range I {
		I[i] += val
	}
	return I
}

func (I Index) Equal(J Index) bool {
	if len(I) != len(J) {
		return false
	}
	for i, val := range I {
		if J[i] != val {
			return false
		}
	}
	return true
}

// Join renders the index as ASCII decimals separated by sep, with no trailing separator
func (I Index) Join(sep string) string {
	var (
		sb strings.Builder
	)
	// Typical index values are 6 digits or fewer
	sb.Grow(len(I) * 7)
	for i, val := range I {
		if i != 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(val))
	}
	return sb.String()
}

func (I Index) String() string {
	return I.Join(",")
}

// ParseIndex is the inverse of Join. Whitespace around tokens and a single trailing separator are ignored.
func ParseIndex(s, sep string) (I Index, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, sep)
	if len(s) == 0 {
		return Index{}, nil
	}
	tokens := strings.Split(s, sep)
	I = make(Index, len(tokens))
	for i, token := range tokens {
		if I[i], err = strconv.Atoi(strings.TrimSpace(token)); err != nil {
			err = fmt.Errorf("unable to parse index token %d [%s]: %w", i, token, err)
			return nil, err
		}
	}
	return
}
