// Package shape lays out the flat rectangles the garage viewer is drawn from.
// It has no rendering dependency so layouts can be checked without a display.
package shape

import (
	"image/color"

	"github.com/golangdaddy/tirecheck/models"
	"github.com/golangdaddy/tirecheck/models/tire"
)

// Rect is a solid rectangle in screen coordinates
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

var (
	BorderColor  = color.RGBA{80, 80, 100, 255}
	BodyColor    = color.RGBA{200, 200, 210, 255}
	OutlineColor = color.RGBA{20, 20, 20, 255}
	TireColor    = color.RGBA{30, 30, 30, 255}
	MudColor     = color.RGBA{110, 80, 40, 255}
	LowColor     = color.RGBA{230, 80, 60, 255}
)

// Sprite size at scale 1
const (
	SpriteWidth  = 30.0
	SpriteHeight = 50.0
	wheelWidth   = 6.0
	wheelHeight  = 8.0
	bikeWidth    = 10.0
)

// wheel offsets inside the sprite, in MountedTires order
var (
	carWheels  = [][2]float64{{2, 5}, {22, 5}, {2, 37}, {22, 37}}
	bikeWheels = [][2]float64{{12, 2}, {12, 40}}
)

// Button returns a box of the given fill with a 2px border, outermost first
func Button(x, y, w, h float64, fill color.RGBA) []Rect {
	const border = 2
	return []Rect{
		{X: x, Y: y, W: w, H: h, Color: BorderColor},
		{X: x + border, Y: y + border, W: w - 2*border, H: h - 2*border, Color: fill},
	}
}

// Vehicle returns a top-down sprite of v at (x, y): outline, body, then one
// rect per tire. Tires below the recommended pressure are red, muddy ones brown.
func Vehicle(v models.Vehicle, x, y, scale float64) []Rect {
	mounted := models.MountedTires(v)
	wheels, bodyWidth := carWheels, SpriteWidth
	if len(mounted) == 2 {
		wheels, bodyWidth = bikeWheels, bikeWidth
	}

	at := func(ox, oy, w, h float64, clr color.RGBA) Rect {
		return Rect{X: x + ox*scale, Y: y + oy*scale, W: w * scale, H: h * scale, Color: clr}
	}

	left := (SpriteWidth - bodyWidth) / 2
	rects := []Rect{
		at(left, 0, bodyWidth, SpriteHeight, OutlineColor),
		at(left+2, 2, bodyWidth-4, SpriteHeight-4, BodyColor),
	}
	for i, m := range mounted {
		if i >= len(wheels) {
			break
		}
		rects = append(rects, at(wheels[i][0], wheels[i][1], wheelWidth, wheelHeight, WheelColor(m.Tire)))
	}
	return rects
}

// WheelColor picks the colour a tire is drawn in
func WheelColor(t tire.Tire) color.RGBA {
	switch {
	case t.NeedsAir():
		return LowColor
	case !t.IsClean():
		return MudColor
	}
	return TireColor
}
