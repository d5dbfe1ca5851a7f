package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	BorderMin = 0
	BorderMax = 2

	Size = BorderMax + 1
)

// WinLines - the 8 winning lines of the board: 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Move - a cell address on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - a fixed 3x3 grid stored row-major. The zero value is an empty board.
type Board [Size][Size]Mark

func NewBoard() *Board {
	return &Board{}
}

// ValidCoordinate - reports whether (row, col) addresses a cell of the board.
func ValidCoordinate(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}

// Opponent - returns the mark playing against the given one.
func Opponent(mark Mark) Mark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that *Board) Cell(row, col int) Mark {
	mustBeValid(row, col)
	return that[row][col]
}

// IsEmpty - panics on coordinates outside the board, those only come from broken callers.
func (that *Board) IsEmpty(row, col int) bool {
	mustBeValid(row, col)
	return that[row][col] == EmptyCell
}

// Place - puts the mark into an empty cell. It is the only way the game mutates the board.
func (that *Board) Place(row, col int, mark Mark) error {
	if !ValidCoordinate(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// Clear - undoes a trial placement made by the search.
func (that *Board) Clear(row, col int) {
	mustBeValid(row, col)
	that[row][col] = EmptyCell
}

func (that *Board) HasWon(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that[a.Row][a.Col] == mark && that[b.Row][b.Col] == mark && that[c.Row][c.Col] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells - returns the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Outcome - evaluates the position. A win is checked before a full board,
// so a last move that completes a line is a win, not a draw.
func (that *Board) Outcome() Outcome {
	switch {
	case that.HasWon(PlayerX):
		return Win(PlayerX)
	case that.HasWon(PlayerO):
		return Win(PlayerO)
	case that.IsFull():
		return Draw()
	default:
		return InProgress()
	}
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range Size {
			if that[row][col] == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(that[row][col]))
		}
	}

	return sb.String()
}

func mustBeValid(row, col int) {
	if !ValidCoordinate(row, col) {
		panic(fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col))
	}
}
