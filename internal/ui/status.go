package ui

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const (
	textYourTurn     = "Your Turn (X)"
	textComputerTurn = "Computer's Turn (O)..."
	textHumanWin     = "You Win!"
	textComputerWin  = "Computer Win!"
	textDraw         = "It's a draw!"
)

// StatusText - the line shown above the board for a controller state.
func StatusText(state tictactoe.State, outcome entity.Outcome) string {
	switch {
	case outcome.IsWin() && outcome.Winner == tictactoe.HumanMark:
		return textHumanWin
	case outcome.IsWin():
		return textComputerWin
	case outcome.IsDraw():
		return textDraw
	case state == tictactoe.StateAwaitingComputer:
		return textComputerTurn
	default:
		return textYourTurn
	}
}
