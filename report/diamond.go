package report

import (
	"slices"
	"strings"
)

// Diamond renders the pattern as a text diamond mirrored on both axes. Slot 0 forms
// the outer ring and the last slot the centre; a cell shows "0" when its slot has
// any hits and "-" otherwise. The first line is a ruler of asterisks.
func Diamond(pattern []int) string {
	n := len(pattern)
	if n == 0 {
		return ""
	}
	reversed := slices.Clone(pattern)
	slices.Reverse(reversed)

	quadrant := make([][]string, n)
	for x := 0; x < n; x++ {
		row := make([]string, n)
		for y := 0; y < n; y++ {
			row[y] = "-"
			if reversed[max(x, y)] != 0 {
				row[y] = "0"
			}
		}
		quadrant[x] = mirror(row)
	}
	rows := mirror(quadrant)

	var b strings.Builder
	b.WriteString(strings.Repeat("*", 2*n-1))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	return b.String()
}

// mirror returns s reversed followed by s, sharing the first element.
func mirror[T any](s []T) []T {
	out := make([]T, 0, 2*len(s)-1)
	for i := len(s) - 1; i > 0; i-- {
		out = append(out, s[i])
	}
	return append(out, s...)
}
