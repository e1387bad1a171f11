package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/tirecheck/ui/shape"
)

// bitmapfont glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var (
	face = text.NewGoXFace(bitmapfont.Face)

	// pixel is a single white texel every solid rect is scaled and tinted from
	pixel *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// fillRects draws each rect in order
func fillRects(dst *ebiten.Image, rects []shape.Rect) {
	src := whitePixel()
	for _, r := range rects {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W, r.H)
		op.GeoM.Translate(r.X, r.Y)
		op.ColorScale.ScaleWithColor(r.Color)
		dst.DrawImage(src, op)
	}
}

// drawButton draws a bordered box with its label centered inside
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.RGBA) {
	fillRects(screen, shape.Button(x, y, width, height, bgColor))
	drawText(screen, label, x+width/2, y+height/2, glyphHeight, textColor)
}

// drawText draws text centered on (centerX, centerY) at the given pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, face) * scale
	drawTextAt(screen, str, centerX-width/2, centerY, size, clr)
}

// drawTextAt draws text with its left edge at x, vertically centered on y
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
