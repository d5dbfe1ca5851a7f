package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	HumanMark    = entity.PlayerX
	ComputerMark = entity.PlayerO
)

type State string

const (
	StateAwaitingHuman    State = "awaiting_human"
	StateAwaitingComputer State = "awaiting_computer"
	StateFinished         State = "finished"
)

type moveSelector interface {
	SelectMove(board entity.Board) (entity.Move, error)
}

// GameController - sequences human move, terminal check, computer move, terminal check.
// It is not safe for concurrent use, the caller drives it from a single goroutine.
type GameController struct {
	logger *slog.Logger
	bot    moveSelector

	board     entity.Board
	state     State
	outcome   entity.Outcome
	roundID   string
	listeners []Listener
}

func NewGameController(logger *slog.Logger, bot moveSelector) *GameController {
	controller := &GameController{
		logger: logger.With("component", "game_controller"),
		bot:    bot,
	}
	controller.newRound()

	return controller
}

func (that *GameController) Subscribe(listener Listener) {
	that.listeners = append(that.listeners, listener)
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) CurrentOutcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) RoundID() string {
	return that.roundID
}

// Board - returns a copy, the controller's board can only change through its moves.
func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) IsFinished() bool {
	return that.state == StateFinished
}

func (that *GameController) SubmitHumanMove(row, col int) error {
	if that.state != StateAwaitingHuman {
		return fmt.Errorf("%w: human move while %s", apperror.ErrInvalidStateTransition, that.state)
	}

	if err := that.board.Place(row, col, HumanMark); err != nil {
		return fmt.Errorf("invalid human move: %w", err)
	}

	that.applyMove(HumanMark, entity.Move{Row: row, Col: col}, StateAwaitingComputer)

	return nil
}

func (that *GameController) TriggerComputerMove() (entity.Move, error) {
	if that.state != StateAwaitingComputer {
		return entity.Move{}, fmt.Errorf("%w: computer move while %s", apperror.ErrInvalidStateTransition, that.state)
	}

	move, err := that.bot.SelectMove(that.board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = that.board.Place(move.Row, move.Col, ComputerMark); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.applyMove(ComputerMark, move, StateAwaitingHuman)

	return move, nil
}

// Reset - clears the board and starts a new round from any state.
func (that *GameController) Reset() {
	that.newRound()
	that.logger.Info("game reset", "round_id", that.roundID)
	that.emit(Event{Type: EventGameReset, Outcome: that.outcome})
}

func (that *GameController) newRound() {
	that.board.Reset()
	that.state = StateAwaitingHuman
	that.outcome = entity.InProgress()
	that.roundID = uuid.NewString()
}

// applyMove - records a placed mark and moves to next unless the game has ended.
// The state is updated before listeners run, so they observe the new state.
func (that *GameController) applyMove(mark entity.Mark, move entity.Move, next State) {
	that.outcome = that.board.Outcome()
	that.state = next
	if that.outcome.IsTerminal() {
		that.state = StateFinished
	}

	that.logger.Debug("move applied",
		"round_id", that.roundID,
		"mark", mark,
		"move", move.String(),
		"board", that.board.String(),
	)
	that.emit(Event{Type: EventMoveApplied, Mark: mark, Move: move, Outcome: that.outcome})

	switch {
	case that.outcome.IsWin():
		that.logger.Info("game won", "round_id", that.roundID, "winner", that.outcome.Winner)
		that.emit(Event{Type: EventGameWon, Mark: that.outcome.Winner, Move: move, Outcome: that.outcome})
	case that.outcome.IsDraw():
		that.logger.Info("game drawn", "round_id", that.roundID)
		that.emit(Event{Type: EventGameDrawn, Move: move, Outcome: that.outcome})
	}
}

func (that *GameController) emit(event Event) {
	event.RoundID = that.roundID
	for _, listener := range that.listeners {
		listener(event)
	}
}
