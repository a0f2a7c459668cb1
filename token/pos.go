package token

import "fmt"

// Pos is a position in source text.  Line and Col count from 1, Col in
// bytes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d col %d (offset %d)", p.Line, p.Col, p.Offset)
}
