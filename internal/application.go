package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// resolved before the terminal switches to full screen mode
	dark := conf.DarkTheme()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal screen: %w", err)
	}

	bot := service.NewBotService(logger, tictactoe.ComputerMark, service.WithPruning(!conf.NoPruning))
	gameController := tictactoe.NewGameController(logger, bot)
	view := ui.New(logger, gameController, screen, ui.Options{
		Dark:          dark,
		ComputerDelay: conf.ComputerDelay,
		Sound:         !conf.Mute,
	})

	log.Info("Starting game", "theme", conf.Theme, "dark", dark, "alpha_beta", !conf.NoPruning)

	if err = view.Run(ctx); err != nil {
		return fmt.Errorf("game ui error: %w", err)
	}

	log.Info("Game closed")

	return nil
}
