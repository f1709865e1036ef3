package deck

import "fmt"

// Color represents a card color
type Color int

const (
	Blue Color = iota
	Green
	Red
	White
	Yellow
)

// NumColors is the number of distinct card colors.
const NumColors = 5

// Colors lists every color in a fixed order.
var Colors = []Color{Blue, Green, Red, White, Yellow}

// String returns the string representation of a color
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "?"
	}
}

// MaxNumber is the highest card number, and therefore the height of a
// completed stack.
const MaxNumber = 5

// CardCount maps a card number to how many copies of it exist per color.
var CardCount = map[int]int{
	1: 3,
	2: 2,
	3: 2,
	4: 2,
	5: 1,
}

// Card represents a Hanabi card
type Card struct {
	Color  Color
	Number int
}

// NewCard creates a new card
func NewCard(color Color, number int) Card {
	return Card{Color: color, Number: number}
}

// String returns the string representation of a card (e.g., "blue 1")
func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Color, c.Number)
}
