package app

import (
	"io"

	"github.com/orifhon74/task3/internal/domain"
	"github.com/orifhon74/task3/internal/services/game"
)

// Config holds runtime wiring options for building the app. Zero-value
// fields fall back to the production defaults applied by game.New
// (crypto/rand, stdin, stdout).
type Config struct {
	Rand io.Reader // secure random source
	In   io.Reader // interactive input
	Out  io.Writer // transcript output
	Help func(io.Writer)
}

type App struct {
	Dice    *domain.DiceSet
	Session *game.Session
}

func New(dice *domain.DiceSet, cfg Config) *App {
	return &App{
		Dice: dice,
		Session: game.New(dice, game.Config{
			Rand: cfg.Rand,
			In:   cfg.In,
			Out:  cfg.Out,
			Help: cfg.Help,
		}),
	}
}
