package model

// BallColor is the value held by a single board cell
type BallColor int8

const (
	Empty BallColor = iota
	Red
	Green
	Blue
	Brown
	Magenta
	Yellow
	Cyan
)

// PaletteSize is the number of distinct cell values, including Empty
const PaletteSize = 8

// ValidColors returns the non-empty ball colors in declaration order
func ValidColors() []BallColor {
	return []BallColor{Red, Green, Blue, Brown, Magenta, Yellow, Cyan}
}

// IsEmpty returns true if the color is the empty sentinel
func (c BallColor) IsEmpty() bool {
	return c == Empty
}

// Symbol returns the single-character representation used in board dumps
func (c BallColor) Symbol() byte {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Brown:
		return 'N'
	case Magenta:
		return 'M'
	case Yellow:
		return 'Y'
	case Cyan:
		return 'C'
	default:
		return '.'
	}
}

func (c BallColor) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Brown:
		return "brown"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case Cyan:
		return "cyan"
	default:
		return "unknown"
	}
}
