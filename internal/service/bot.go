package service

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0
)

// BotService - chooses the computer's move with an exhaustive minimax search.
type BotService interface {
	SelectMove(board entity.Board) (entity.Move, error)
	Mark() entity.Mark
}

type BotOption func(*botService)

// WithPruning - enables alpha-beta pruning. The chosen move does not change, only the number of visited nodes.
func WithPruning(enabled bool) BotOption {
	return func(that *botService) {
		that.pruning = enabled
	}
}

type botService struct {
	logger  *slog.Logger
	mark    entity.Mark
	pruning bool
}

func NewBotService(logger *slog.Logger, mark entity.Mark, opts ...BotOption) BotService {
	bot := &botService{
		logger: logger.With("component", "bot", "mark", mark),
		mark:   mark,
	}

	for _, opt := range opts {
		opt(bot)
	}

	return bot
}

func (that *botService) Mark() entity.Mark {
	return that.mark
}

// SelectMove - returns the best cell for the bot. The board is passed by value,
// the search mutates only its own copy and restores every cell it tries.
func (that *botService) SelectMove(board entity.Board) (entity.Move, error) {
	if board.HasWon(entity.PlayerX) || board.HasWon(entity.PlayerO) {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if board.IsFull() {
		return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrGameFinished, apperror.ErrNoAvailableMoves)
	}

	started := time.Now()

	s := &search{
		board:    &board,
		bot:      that.mark,
		opponent: entity.Opponent(that.mark),
		pruning:  that.pruning,
	}

	move, score := s.bestMove()

	that.logger.Debug("bot selected move",
		"move", move.String(),
		"score", score,
		"nodes", s.nodes,
		"pruning", that.pruning,
		"elapsed", time.Since(started),
	)

	return move, nil
}

type search struct {
	board    *entity.Board
	bot      entity.Mark
	opponent entity.Mark
	pruning  bool
	nodes    int
}

// bestMove - scans the cells row-major and keeps the first strictly greater score,
// so among equal moves the earliest one wins.
func (that *search) bestMove() (entity.Move, int) {
	var best entity.Move
	bestScore := math.MinInt

	for row := range entity.Size {
		for col := range entity.Size {
			if !that.board.IsEmpty(row, col) {
				continue
			}

			alpha := bestScore
			score := that.try(row, col, that.bot, func() int {
				return that.minimax(0, false, alpha, math.MaxInt)
			})

			if score > bestScore {
				bestScore = score
				best = entity.Move{Row: row, Col: col}
			}
		}
	}

	return best, bestScore
}

// minimax - depth counts plies below the move being evaluated at the top level.
func (that *search) minimax(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	switch {
	case that.board.HasWon(that.bot):
		return winScore - depth
	case that.board.HasWon(that.opponent):
		return depth - winScore
	case that.board.IsFull():
		return drawScore
	}

	mark := that.opponent
	best := math.MaxInt
	if maximizing {
		mark = that.bot
		best = math.MinInt
	}

	for row := range entity.Size {
		for col := range entity.Size {
			if !that.board.IsEmpty(row, col) {
				continue
			}

			score := that.try(row, col, mark, func() int {
				return that.minimax(depth+1, !maximizing, alpha, beta)
			})

			if maximizing {
				best = max(best, score)
				alpha = max(alpha, best)
			} else {
				best = min(best, score)
				beta = min(beta, best)
			}

			if that.pruning && alpha >= beta {
				return best
			}
		}
	}

	return best
}

// try - places the mark, evaluates the position and clears the cell on every exit path.
func (that *search) try(row, col int, mark entity.Mark, evaluate func() int) int {
	if err := that.board.Place(row, col, mark); err != nil {
		panic(fmt.Errorf("search tried a taken cell: %w", err))
	}
	defer that.board.Clear(row, col)

	return evaluate()
}
