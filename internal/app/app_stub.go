//go:build !ebiten

package app

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoGUI is returned by New in builds without the ebiten tag.
var ErrNoGUI = errors.New("app.New requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(*Config, *zap.Logger) (*Game, error) { return nil, ErrNoGUI }

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Close is a no-op placeholder.
func (g *Game) Close() error { return nil }
