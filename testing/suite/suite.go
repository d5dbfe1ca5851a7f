package suite

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - builds a board from three rows written as "XO.", where '.' is an empty cell.
func (that *Suite) Board(rows ...string) entity.Board {
	that.Helper()

	var board entity.Board
	if len(rows) != entity.Size {
		that.Fatalf("board needs %d rows, got %d", entity.Size, len(rows))
	}

	for row, line := range rows {
		if len(line) != entity.Size {
			that.Fatalf("row %d needs %d cells, got %q", row, entity.Size, line)
		}

		for col, cell := range line {
			switch cell {
			case 'X':
				board[row][col] = entity.PlayerX
			case 'O':
				board[row][col] = entity.PlayerO
			case '.':
				board[row][col] = entity.EmptyCell
			default:
				that.Fatalf("unknown cell %q at row %d, col %d", cell, row, col)
			}
		}
	}

	return board
}
