package service

import (
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_SelectMove(t *testing.T) {
	s := suite.New(t)

	for _, pruning := range []bool{false, true} {
		t.Run(fmt.Sprintf("pruning=%t", pruning), func(t *testing.T) {
			testSelectMove(t, s, NewBotService(s.Logger, entity.PlayerO, WithPruning(pruning)))
		})
	}
}

func testSelectMove(t *testing.T, s *suite.Suite, bot BotService) {
	t.Helper()

	t.Run("Takes the immediate win", func(t *testing.T) {
		// Given: O can complete the top row
		board := s.Board(
			"OO.",
			"XX.",
			"...",
		)

		// When: the bot selects a move
		move, err := bot.SelectMove(board)

		// Then: it plays the winning cell
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Blocks the opponent's win", func(t *testing.T) {
		// Given: X threatens the main diagonal and O has no win
		board := s.Board(
			"XO.",
			".X.",
			"O..",
		)

		// When: the bot selects a move
		move, err := bot.SelectMove(board)

		// Then: it blocks X on the diagonal
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Prefers the faster win", func(t *testing.T) {
		// Given: (1,0) forks into a win two plies later, (2,0) wins at once
		board := s.Board(
			"XXO",
			".O.",
			"..X",
		)

		// When: the bot selects a move
		move, err := bot.SelectMove(board)

		// Then: the immediate win is chosen over the earlier fork
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("Breaks ties by the first cell in row-major order", func(t *testing.T) {
		// Given: X took the center, every corner scores the same for O
		board := s.Board(
			"...",
			".X.",
			"...",
		)

		// When: the bot selects a move
		move, err := bot.SelectMove(board)

		// Then: the top left corner is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})
}

func TestBotService_SelectMoveLeavesBoardUntouched(t *testing.T) {
	s := suite.New(t)
	bot := NewBotService(s.Logger, entity.PlayerO)

	// Given: a position in progress
	board := s.Board(
		"X..",
		".O.",
		"..X",
	)
	snapshot := board

	// When: the bot selects a move
	move, err := bot.SelectMove(board)

	// Then: the caller's board is unchanged and the move is free
	require.NoError(t, err)
	assert.Equal(t, snapshot, board)
	assert.True(t, board.IsEmpty(move.Row, move.Col))
}

func TestBotService_SelectMoveOnFinishedBoard(t *testing.T) {
	s := suite.New(t)
	bot := NewBotService(s.Logger, entity.PlayerO)

	t.Run("Error when someone has already won", func(t *testing.T) {
		board := s.Board(
			"XXX",
			"OO.",
			"...",
		)

		_, err := bot.SelectMove(board)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error when the board is full", func(t *testing.T) {
		board := s.Board(
			"XOX",
			"XOO",
			"OXX",
		)

		_, err := bot.SelectMove(board)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestBotService_SelfPlayIsADraw(t *testing.T) {
	s := suite.New(t)

	bots := map[entity.Mark]BotService{
		entity.PlayerX: NewBotService(s.Logger, entity.PlayerX, WithPruning(true)),
		entity.PlayerO: NewBotService(s.Logger, entity.PlayerO, WithPruning(true)),
	}

	// Given: an empty board with X to move
	board := entity.NewBoard()
	turn := entity.PlayerX

	// When: both sides play the bot's move until the game ends
	for !board.Outcome().IsTerminal() {
		move, err := bots[turn].SelectMove(*board)
		require.NoError(t, err)
		require.NoError(t, board.Place(move.Row, move.Col, turn))
		turn = entity.Opponent(turn)
	}

	// Then: optimal play ends in a draw
	assert.Equal(t, entity.Draw(), board.Outcome())
}

func TestBotService_NeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("walks every human line")
	}

	s := suite.New(t)
	bot := NewBotService(s.Logger, entity.PlayerO, WithPruning(true))

	var games int

	// every human reply is tried, the bot answers each with its chosen move
	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, human := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(human.Row, human.Col, entity.PlayerX))

			if outcome := next.Outcome(); outcome.IsTerminal() {
				games++
				require.NotEqual(t, entity.Win(entity.PlayerX), outcome, "lost on %s", next.String())
				continue
			}

			move, err := bot.SelectMove(next)
			require.NoError(t, err)
			require.True(t, next.IsEmpty(move.Row, move.Col), "bot picked a taken cell on %s", next.String())
			require.NoError(t, next.Place(move.Row, move.Col, entity.PlayerO))

			if next.Outcome().IsTerminal() {
				games++
				continue
			}

			play(next)
		}
	}

	play(entity.Board{})

	assert.Positive(t, games)
}

func TestBotService_PruningChoosesTheSameMove(t *testing.T) {
	if testing.Short() {
		t.Skip("searches every reachable position")
	}

	s := suite.New(t)
	plain := NewBotService(s.Logger, entity.PlayerO, WithPruning(false))
	pruned := NewBotService(s.Logger, entity.PlayerO, WithPruning(true))

	// Given: every reachable position with O to move
	positions := map[entity.Board]struct{}{}

	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		if board.Outcome().IsTerminal() {
			return
		}

		if turn == entity.PlayerO {
			if _, seen := positions[board]; seen {
				return
			}
			positions[board] = struct{}{}
		}

		for _, move := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(move.Row, move.Col, turn))
			walk(next, entity.Opponent(turn))
		}
	}
	walk(entity.Board{}, entity.PlayerX)

	// Then: both searches agree on each of them
	for board := range positions {
		want, err := plain.SelectMove(board)
		require.NoError(t, err)

		got, err := pruned.SelectMove(board)
		require.NoError(t, err)

		assert.Equal(t, want, got, "position %s", board.String())
	}
}
