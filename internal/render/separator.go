package render

// Box-drawing building blocks for the grid.
const (
	horizontal = '─'
	vertical   = '│'
)

// junctions maps the open directions of a column boundary to the
// box-drawing rune joining them. Index bits: 8 up, 4 down, 2 west,
// 1 east.
var junctions = [16]rune{
	0:  ' ',
	1:  horizontal,
	2:  horizontal,
	3:  horizontal,
	4:  vertical,
	5:  '┌',
	6:  '┐',
	7:  '┬',
	8:  vertical,
	9:  '└',
	10: '┘',
	11: '┴',
	12: vertical,
	13: '├',
	14: '┤',
	15: '┼',
}

// separator picks the junction rune for the boundary between two
// columns, given which neighbour has a talk starting or ending on this
// row. A talk ending opens the boundary upwards, a talk starting opens
// it downwards, and either event on a side opens the boundary towards
// that side.
func separator(rightEnd, rightStart, leftStart, leftEnd bool) rune {
	idx := 0
	if rightEnd || leftEnd {
		idx |= 8
	}
	if rightStart || leftStart {
		idx |= 4
	}
	if leftStart || leftEnd {
		idx |= 2
	}
	if rightStart || rightEnd {
		idx |= 1
	}
	return junctions[idx]
}
