package token

import "fmt"

// Point is a location in source text. Line is 1-based; Col is the 0-based
// raw character offset within the line, not a visual column.
type Point struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before reports whether p reads before q in source order.
func (p Point) Before(q Point) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Position is a source span. End marks the final character consumed.
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// At returns a single-line span on line covering [start, end].
func At(line, start, end int) Position {
	return Position{
		Start: Point{Line: line, Col: start},
		End:   Point{Line: line, Col: end},
	}
}

// Span returns a multi-line position from (startLine, startCol) to
// (endLine, endCol).
func Span(startLine, startCol, endLine, endCol int) Position {
	return Position{
		Start: Point{Line: startLine, Col: startCol},
		End:   Point{Line: endLine, Col: endCol},
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%s-%s", p.Start, p.End)
}

// Contains reports whether pt falls inside the span. The end column is
// inclusive so a cursor resting on the last character of a token hits it.
func (p Position) Contains(pt Point) bool {
	if pt.Line < p.Start.Line || pt.Line > p.End.Line {
		return false
	}
	if pt.Line == p.Start.Line && pt.Col < p.Start.Col {
		return false
	}
	if pt.Line == p.End.Line && pt.Col > p.End.Col {
		return false
	}
	return true
}

// Lines returns the number of physical lines the span covers.
func (p Position) Lines() int {
	return p.End.Line - p.Start.Line + 1
}

// Size is an approximate measure of the span used for specificity
// comparisons: same-line spans measure in columns, multi-line spans in a
// quantity proportional to line count that always exceeds any single line.
func (p Position) Size() int {
	if p.Start.Line == p.End.Line {
		return p.End.Col - p.Start.Col
	}
	return p.Lines() * multiLineSizeFactor
}

const multiLineSizeFactor = 1 << 12

// IsZero reports whether p is the zero Position.
func (p Position) IsZero() bool {
	return p == Position{}
}
