// Package render turns generations into raster frames. Grids with more than
// two axes are shown through their central plane.
package render

import (
	"image"
	"image/color"

	"torus-life/pkg/core"
)

// Palette picks the colors for live and dead cells.
type Palette struct {
	On, Off color.Color
}

// DefaultPalette draws white cells on black, like the original greyscale plots.
var DefaultPalette = Palette{On: color.White, Off: color.Black}

// Plane returns a 2D view of g as (width, height, cells). Axis 0 is rows
// and axis 1 is columns; every further axis is fixed at its midpoint. 0-d
// and 1-d grids become a single row.
func Plane(g *core.Grid) (int, int, []uint8) {
	shape := g.Shape()
	switch len(shape) {
	case 0:
		return 1, 1, []uint8{g.Cells()[0]}
	case 1:
		return shape[0], 1, append([]uint8(nil), g.Cells()...)
	}
	h, w := shape[0], shape[1]
	coord := make([]int, len(shape))
	for axis := 2; axis < len(shape); axis++ {
		coord[axis] = shape[axis] / 2
	}
	cells := make([]uint8, 0, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			coord[0], coord[1] = r, c
			cells = append(cells, g.At(coord...))
		}
	}
	return w, h, cells
}

// Image draws g's plane into a new RGBA image, each cell scale pixels wide.
func Image(g *core.Grid, pal Palette, scale int) *image.RGBA {
	scale = max(scale, 1)
	w, h, cells := Plane(g)
	buf := make([]byte, 4*w*h)
	fillBinaryRGBA(buf, cells, pal.On, pal.Off)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		row := buf[(y/scale)*w*4:]
		for x := 0; x < w*scale; x++ {
			src := (x / scale) * 4
			copy(img.Pix[img.PixOffset(x, y):], row[src:src+4])
		}
	}
	return img
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
