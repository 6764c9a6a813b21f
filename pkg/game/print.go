package game

import (
	"fmt"
	"io"
	"strings"
)

//Fprint writes b as a table with column indexes on top and row indexes on the left.
//When reveal is false occupied fields are printed as empty, which is the view an
//opponent has of the grid.
func Fprint(w io.Writer, b Board, reveal bool) error {
	size := b.Size()

	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < size; x++ {
		fmt.Fprint(&sb, x, " ")
	}
	sb.WriteString("\n")

	for y := 0; y < size; y++ {
		fmt.Fprint(&sb, y, " ")
		for x := 0; x < size; x++ {
			state := b.CellInfo(Position{X: x, Y: y}).DisplayState()
			if state == Occupied && !reveal {
				state = Empty
			}
			sb.WriteRune(state.Rune())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Sprint returns the Fprint rendering of b.
func Sprint(b Board, reveal bool) string {
	var sb strings.Builder
	_ = Fprint(&sb, b, reveal)
	return sb.String()
}
