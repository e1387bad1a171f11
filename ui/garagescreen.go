package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/tirecheck/models"
	"github.com/golangdaddy/tirecheck/models/motorcycle"
	"github.com/golangdaddy/tirecheck/ui/shape"
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	titleColor      = color.RGBA{255, 200, 50, 255}
	rowColor        = color.RGBA{40, 40, 60, 255}
	selectedColor   = color.RGBA{60, 100, 140, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	highlightColor  = color.RGBA{200, 240, 255, 255}
	okColor         = color.RGBA{120, 210, 120, 255}
	hintColor       = color.RGBA{150, 150, 150, 255}
)

// Hooks are called after the viewer changes the garage. Either may be nil.
type Hooks struct {
	OnMud    func(*motorcycle.Motorcycle)
	OnRemove func(models.Vehicle)
}

// GarageScreen lists the vehicles in a garage and shows the tires of the
// selected one
type GarageScreen struct {
	garage *models.Garage
	hooks  Hooks
}

// NewGarageScreen creates a garage screen
func NewGarageScreen(garage *models.Garage, hooks Hooks) *GarageScreen {
	return &GarageScreen{
		garage: garage,
		hooks:  hooks,
	}
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	count := gs.garage.Count()
	if count == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		gs.garage.SetActive((gs.garage.Selected - 1 + count) % count)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		gs.garage.SetActive((gs.garage.Selected + 1) % count)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if m, ok := gs.garage.Active().(*motorcycle.Motorcycle); ok {
			m.RideThroughMud()
			if gs.hooks.OnMud != nil {
				gs.hooks.OnMud(m)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		v, err := gs.garage.RemoveActive()
		if err != nil {
			return err
		}
		if gs.hooks.OnRemove != nil {
			gs.hooks.OnRemove(v)
		}
	}
	return nil
}

// Draw renders the vehicle list on the left and the tire panel on the right
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(backgroundColor)

	drawText(screen, "GARAGE", float64(width)/2, 40, 48, titleColor)
	drawText(screen, "Arrows: Navigate | M: Mud | Del: Remove | Esc: Quit", float64(width)/2, float64(height)-30, 16, hintColor)

	vehicles := gs.garage.All()
	if len(vehicles) == 0 {
		drawText(screen, "No vehicles parked", float64(width)/2, float64(height)/2, 24, textColor)
		return
	}

	listX := 20.0
	listWidth := float64(width)/2 - 30
	rowY := 90.0
	rowHeight := 40.0
	for i, v := range vehicles {
		bg, fg := rowColor, textColor
		if i == gs.garage.Selected {
			bg, fg = selectedColor, highlightColor
		}
		drawButton(screen, fmt.Sprintf("%s (%d wheels)", v.Label(), v.Wheels()), listX, rowY, listWidth, rowHeight-6, bg, fg)
		rowY += rowHeight
	}

	if active := gs.garage.Active(); active != nil {
		gs.drawTires(screen, active, float64(width)/2+10, 100)
	}
}

func (gs *GarageScreen) drawTires(screen *ebiten.Image, v models.Vehicle, x, y float64) {
	drawTextAt(screen, v.Label(), x, y, 20, titleColor)
	y += 36

	for _, m := range models.MountedTires(v) {
		var clr color.Color = okColor
		if m.Tire.NeedsAir() {
			clr = shape.LowColor
		}
		drawTextAt(screen, fmt.Sprintf("%-11s %3d PSI", m.Position, m.Tire.AirPressure()), x, y, 16, clr)

		state := "clean"
		if !m.Tire.IsClean() {
			state = "dirty"
		}
		drawTextAt(screen, state, x+200, y, 16, textColor)
		y += 26
	}

	fillRects(screen, shape.Vehicle(v, x+80, y+10, 3))
}
