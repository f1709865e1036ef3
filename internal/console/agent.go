package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/hanabi/internal/game"
)

// Agent is the interactive console strategy: it renders the game state
// and blocks on input to choose a move. Invalid input re-prompts; the
// index is validated before it is returned, though the engine validates
// again on its own.
type Agent struct {
	name     string
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
}

// NewAgent creates an interactive agent reading moves from in and
// writing prompts and game state to out. Agents sharing one input
// stream (hot-seat play) must share the same *bufio.Reader so that no
// agent buffers ahead of the others; a plain reader is wrapped here.
func NewAgent(name string, in io.Reader, out io.Writer, renderer *Renderer) *Agent {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Agent{
		name:     name,
		in:       br,
		out:      out,
		renderer: renderer,
	}
}

// ChooseMove prompts the player for a move type and card index.
func (a *Agent) ChooseMove(view game.View, seat int) game.Move {
	fmt.Fprintf(a.out, "\nIt is now %s's turn\n\n", a.name)
	fmt.Fprintln(a.out, a.renderer.Render(seat))

	if len(view.Hand(seat)) == 0 {
		fmt.Fprintln(a.out, "Your hand is empty; passing.")
		return game.Move{Type: game.MoveNone, Reasoning: "empty hand"}
	}

	moveType, err := a.promptMoveType(view)
	if err != nil {
		// Input is gone (EOF or a read failure); fall back to a discard
		// so the game can still make progress.
		return game.Move{Type: game.MoveDiscard, Index: 0, Reasoning: fmt.Sprintf("input error: %v", err)}
	}

	if moveType == game.MoveHint {
		return game.Move{Type: game.MoveHint, Reasoning: "console player used a hint"}
	}

	index, err := a.promptCardIndex(view, seat)
	if err != nil {
		return game.Move{Type: game.MoveDiscard, Index: 0, Reasoning: fmt.Sprintf("input error: %v", err)}
	}

	return game.Move{Type: moveType, Index: index, Reasoning: "console player choice"}
}

func (a *Agent) promptMoveType(view game.View) (game.MoveType, error) {
	for {
		fmt.Fprint(a.out, "What type of move do you wish to make (play/discard/hint): ")
		line, err := a.in.ReadString('\n')
		if err != nil {
			return game.MoveNone, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "play", "p":
			return game.MovePlay, nil
		case "discard", "d":
			return game.MoveDiscard, nil
		case "hint", "h":
			if view.HintsRemaining() == 0 {
				fmt.Fprintln(a.out, "No hints remaining.")
				continue
			}
			return game.MoveHint, nil
		}

		fmt.Fprintln(a.out, "Please enter a valid move type.")
	}
}

func (a *Agent) promptCardIndex(view game.View, seat int) (int, error) {
	for {
		fmt.Fprintf(a.out, "Enter the index of your card (0-%d): ", len(view.Hand(seat))-1)
		line, err := a.in.ReadString('\n')
		if err != nil {
			return 0, err
		}

		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(a.out, "Please enter a valid number.")
			continue
		}

		if view.IsValidCardIndex(seat, index) {
			return index, nil
		}

		fmt.Fprintln(a.out, "That card index is not valid. Please try again.")
	}
}
