package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Contact sheet cell spacing in pixels.
const (
	sheetMargin = 24
	sheetGap    = 8
)

// ContactSheet composes rendered card images into a single grid, left to
// right then top to bottom. Cells share one aspect ratio taken from the
// first image; all cards render at the canonical size so nothing is
// distorted in practice.
func ContactSheet(cards []image.Image, columns, cellWidth int) image.Image {
	if columns < 1 {
		columns = 1
	}
	if len(cards) == 0 {
		return imaging.New(sheetMargin*2, sheetMargin*2, color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF})
	}

	first := cards[0].Bounds()
	cellHeight := cellWidth * first.Dy() / first.Dx()
	rows := (len(cards) + columns - 1) / columns

	width := sheetMargin*2 + columns*cellWidth + (columns-1)*sheetGap
	height := sheetMargin*2 + rows*cellHeight + (rows-1)*sheetGap
	sheet := imaging.New(width, height, color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF})

	for i, card := range cards {
		resized := imaging.Resize(card, cellWidth, cellHeight, imaging.Lanczos)
		x := sheetMargin + (i%columns)*(cellWidth+sheetGap)
		y := sheetMargin + (i/columns)*(cellHeight+sheetGap)
		sheet = imaging.Paste(sheet, resized, image.Pt(x, y))
	}
	return sheet
}
