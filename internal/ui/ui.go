package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const (
	title = "Tic Tac Toe (vs AI)"

	labelToggle  = "Toggle Light/Dark Mode"
	labelRestart = "Restart Game"
)

// bells - how many times the terminal bell rings for an event.
var bells = map[tictactoe.EventType]int{
	tictactoe.EventMoveApplied: 1,
	tictactoe.EventGameWon:     2,
	tictactoe.EventGameDrawn:   1,
}

type gameController interface {
	SubmitHumanMove(row, col int) error
	TriggerComputerMove() (entity.Move, error)
	Reset()

	State() tictactoe.State
	CurrentOutcome() entity.Outcome
	Board() entity.Board
	Subscribe(listener tictactoe.Listener)
}

type Options struct {
	Dark          bool
	ComputerDelay time.Duration
	Sound         bool
}

// scheduleFunc - runs f on the UI goroutine after delay and returns a function cancelling it.
type scheduleFunc func(delay time.Duration, f func()) (cancel func() bool)

// UI - the terminal window: a status line, a 3x3 grid of cells and the theme and restart buttons.
// All its methods run on the tview event loop.
type UI struct {
	logger *slog.Logger
	game   gameController
	opts   Options

	app    *tview.Application
	screen tcell.Screen

	root    *tview.Flex
	grid    *tview.Grid
	status  *tview.TextView
	cells   [entity.Size][entity.Size]*tview.Button
	toggle  *tview.Button
	restart *tview.Button

	dark     bool
	schedule scheduleFunc
	cancel   func() bool

	// generation invalidates computer moves scheduled before a restart.
	generation int
}

func New(logger *slog.Logger, game gameController, screen tcell.Screen, opts Options) *UI {
	that := &UI{
		logger: logger.With("component", "ui"),
		game:   game,
		opts:   opts,
		app:    tview.NewApplication(),
		screen: screen,
		dark:   opts.Dark,
		cancel: func() bool { return false },
	}
	that.schedule = that.afterDelay

	if screen != nil {
		that.app.SetScreen(screen)
	}

	that.build()
	that.applyTheme()
	that.refresh()

	game.Subscribe(that.onEvent)

	return that
}

// Run - blocks until the user quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (that *UI) build() {
	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	that.grid = tview.NewGrid().
		SetRows(0, 0, 0).
		SetColumns(0, 0, 0).
		SetBorders(true)

	for row := range entity.Size {
		for col := range entity.Size {
			cell := tview.NewButton("").SetSelectedFunc(func() {
				that.selectCell(row, col)
			})
			that.cells[row][col] = cell
			that.grid.AddItem(cell, row, col, 1, 1, 0, 0, row == 1 && col == 1)
		}
	}

	that.toggle = tview.NewButton(labelToggle).SetSelectedFunc(that.toggleTheme)
	that.restart = tview.NewButton(labelRestart).SetSelectedFunc(that.restartGame)

	controls := tview.NewFlex().
		AddItem(that.toggle, 0, 1, false).
		AddItem(that.restart, 0, 1, false)

	that.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(that.status, 3, 0, false).
		AddItem(that.grid, 0, 1, true).
		AddItem(controls, 1, 0, false)

	that.app.
		SetTitle(title).
		SetRoot(that.root, true).
		SetFocus(that.cells[1][1]).
		EnableMouse(true).
		SetInputCapture(that.handleKey)
}

// handleKey - digits pick a cell row-major, arrows move between cells, t/r/q are the buttons and quit.
func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyUp:
		that.moveFocus(-1, 0)
		return nil
	case tcell.KeyDown:
		that.moveFocus(1, 0)
		return nil
	case tcell.KeyLeft:
		that.moveFocus(0, -1)
		return nil
	case tcell.KeyRight:
		that.moveFocus(0, 1)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		index := int(r - '1')
		that.selectCell(index/entity.Size, index%entity.Size)
	case r == 't':
		that.toggleTheme()
	case r == 'r':
		that.restartGame()
	case r == 'q':
		that.app.Stop()
	default:
		return event
	}

	return nil
}

func (that *UI) moveFocus(dRow, dCol int) {
	row, col := 1, 1
	for r := range entity.Size {
		for c := range entity.Size {
			if that.cells[r][c].HasFocus() {
				row, col = r+dRow, c+dCol
			}
		}
	}

	if !entity.ValidCoordinate(row, col) {
		return
	}

	that.app.SetFocus(that.cells[row][col])
}

func (that *UI) selectCell(row, col int) {
	err := that.game.SubmitHumanMove(row, col)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrInvalidStateTransition):
		that.logger.Debug("human move ignored", "row", row, "col", col, "reason", err.Error())
		return
	default:
		that.logger.Error("human move failed", "row", row, "col", col, "error", err)
		return
	}

	if that.game.State() == tictactoe.StateAwaitingComputer {
		that.scheduleComputerMove()
	}

	that.refresh()
}

func (that *UI) scheduleComputerMove() {
	that.cancel()
	that.generation++

	generation := that.generation
	that.cancel = that.schedule(that.opts.ComputerDelay, func() {
		if generation != that.generation {
			return
		}
		that.computerMove()
	})
}

func (that *UI) computerMove() {
	move, err := that.game.TriggerComputerMove()
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidStateTransition) {
			that.logger.Debug("computer move ignored", "reason", err.Error())
			return
		}

		that.logger.Error("computer move failed", "error", err)
		return
	}

	that.logger.Debug("computer moved", "move", move.String())
	that.refresh()
}

func (that *UI) restartGame() {
	that.cancel()
	that.generation++

	that.game.Reset()
	that.refresh()
	that.app.SetFocus(that.cells[1][1])
}

func (that *UI) toggleTheme() {
	that.dark = !that.dark
	that.logger.Debug("theme toggled", "dark", that.dark)
	that.applyTheme()
}

func (that *UI) applyTheme() {
	palette := PaletteFor(that.dark)

	that.root.SetBackgroundColor(palette.Background)
	that.grid.SetBackgroundColor(palette.Background)
	that.grid.SetBordersColor(palette.Foreground)
	that.status.SetTextStyle(palette.Mark())
	that.status.SetBackgroundColor(palette.Background)

	for row := range entity.Size {
		for col := range entity.Size {
			that.cells[row][col].
				SetStyle(palette.Mark()).
				SetActivatedStyle(palette.Inverted().Bold(true)).
				SetDisabledStyle(palette.Mark())
		}
	}

	// the controls use inverted colours so they stand out from the board
	for _, button := range []*tview.Button{that.toggle, that.restart} {
		button.
			SetStyle(palette.Inverted()).
			SetActivatedStyle(palette.Inverted().Bold(true).Underline(true))
	}
}

// refresh - redraws the marks, the status line and cell enablement from the controller.
func (that *UI) refresh() {
	board := that.game.Board()
	state := that.game.State()
	outcome := that.game.CurrentOutcome()

	for row := range entity.Size {
		for col := range entity.Size {
			that.cells[row][col].
				SetLabel(string(board.Cell(row, col))).
				SetDisabled(state != tictactoe.StateAwaitingHuman)
		}
	}

	that.status.SetText(StatusText(state, outcome))
}

func (that *UI) onEvent(event tictactoe.Event) {
	if !that.opts.Sound || that.screen == nil {
		return
	}

	for range bells[event.Type] {
		if err := that.screen.Beep(); err != nil {
			that.logger.Debug("bell failed", "error", err)
			return
		}
	}
}

func (that *UI) afterDelay(delay time.Duration, f func()) func() bool {
	timer := time.AfterFunc(delay, func() {
		that.app.QueueUpdateDraw(f)
	})

	return timer.Stop
}
