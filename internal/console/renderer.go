// Package console contains the interactive console strategy and the
// renderer it uses to show game state. Neither mutates the game; they
// consume its read-only query surface.
package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hanabi/internal/deck"
	"github.com/lox/hanabi/internal/game"
)

const columnWidth = 16

// Styles contains styling for console output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Muted     lipgloss.Style
	Score     lipgloss.Style
	Cards     map[deck.Color]lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Cards: map[deck.Color]lipgloss.Style{
			deck.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
			deck.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
			deck.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
			deck.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
			deck.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		},
	}
}

// Renderer formats one game's state for the console. Each renderer is
// bound to a single game view at construction; there is no shared
// registry of renderers.
type Renderer struct {
	view   game.View
	styles *Styles
}

// NewRenderer creates a renderer bound to the given game view
func NewRenderer(view game.View) *Renderer {
	return &Renderer{
		view:   view,
		styles: NewStyles(),
	}
}

// GameInfo renders a basic overview of the game
func (r *Renderer) GameInfo() string {
	var b strings.Builder

	b.WriteString(r.styles.SubHeader.Render("Game Overview:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "\t          Score: %s\n", r.styles.Score.Render(fmt.Sprintf("%d", r.view.Score())))
	fmt.Fprintf(&b, "\tRemaining Cards: %d\n", r.view.CardsRemaining())
	fmt.Fprintf(&b, "\t          Hints: %d\n", r.view.HintsRemaining())

	if turns, armed := r.view.TurnsRemaining(); armed {
		fmt.Fprintf(&b, "\tTurns Remaining: %d\n", turns)
	} else {
		b.WriteString("\tTurns Remaining: N/A\n")
	}

	b.WriteString(r.styles.SubHeader.Render("Stacks:"))
	b.WriteString("\n")
	stacks := r.view.Stacks()
	for _, color := range deck.Colors {
		fmt.Fprintf(&b, "\t%s: %d\n", r.styles.Cards[color].Render(color.String()), stacks[color])
	}

	return b.String()
}

// Discards renders the discard pile grouped by color, one column per
// color, lowest numbers first.
func (r *Renderer) Discards() string {
	discards := r.view.Discards()
	if len(discards) == 0 {
		return r.styles.SubHeader.Render("Discards:") + "\n\n" +
			r.styles.Muted.Render("No cards have been discarded.") + "\n"
	}

	columns := make(map[deck.Color][]deck.Card)
	for _, card := range discards {
		columns[card.Color] = append(columns[card.Color], card)
	}

	rows := 0
	for _, cards := range columns {
		sort.Slice(cards, func(i, j int) bool { return cards[i].Number < cards[j].Number })
		if len(cards) > rows {
			rows = len(cards)
		}
	}

	var b strings.Builder
	b.WriteString(r.styles.SubHeader.Render("Discards:"))
	b.WriteString("\n\n")
	for row := 0; row < rows; row++ {
		for _, color := range deck.Colors {
			cell := ""
			if row < len(columns[color]) {
				cell = columns[color][row].String()
			}
			b.WriteString(pad(cell, columnWidth))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// OtherHands renders every hand except the given seat's, one column per
// player. The acting player never sees their own cards.
func (r *Renderer) OtherHands(seat int) string {
	hands := r.view.OtherHands(seat)

	names := make([]string, 0, len(hands))
	for name := range hands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(r.styles.SubHeader.Render("Player Hands:"))
	b.WriteString("\n\n")
	for _, name := range names {
		b.WriteString(pad(name, columnWidth))
	}
	b.WriteString("\n")

	rows := 0
	for _, hand := range hands {
		if len(hand) > rows {
			rows = len(hand)
		}
	}

	for row := 0; row < rows; row++ {
		for _, name := range names {
			cell := ""
			if row < len(hands[name]) {
				cell = hands[name][row].String()
			}
			b.WriteString(pad(cell, columnWidth))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Render produces the full pre-turn display for a seat.
func (r *Renderer) Render(seat int) string {
	return strings.Join([]string{
		r.GameInfo(),
		r.Discards(),
		r.OtherHands(seat),
	}, "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
