package model

import "fmt"

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move describes the intent to relocate one ball
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}
