package common

import (
	"strings"
)

// LineString joins moves in their canonical notation.
func LineString(line []Move) string {
	var sb = &strings.Builder{}
	for i, move := range line {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(move.String())
	}
	return sb.String()
}
