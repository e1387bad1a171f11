package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/golangdaddy/tirecheck/models"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// Viewer implements ebiten.Game around a single garage screen
type Viewer struct {
	screen *GarageScreen
}

// NewViewer creates a viewer for the given garage
func NewViewer(garage *models.Garage, hooks Hooks) *Viewer {
	return &Viewer{screen: NewGarageScreen(garage, hooks)}
}

// Update is called every tick (1/60 [s] by default).
func (v *Viewer) Update() error {
	return v.screen.Update()
}

// Draw is called every frame.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.screen.Draw(screen)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens a window and blocks until it is closed. Must be called from the
// main goroutine.
func Run(garage *models.Garage, hooks Hooks) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tirecheck Garage")
	if err := ebiten.RunGame(NewViewer(garage, hooks)); err != nil && err != ebiten.Termination {
		return errors.Wrap(err, "garage viewer")
	}
	return nil
}
