package viz

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = rune(0x2800)

// Canvas is a grid of braille cells. Drawing happens in dot coordinates,
// two dots per column and four per row.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots is the canvas size in dots.
func (c *Canvas) Dots() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Set turns on the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeRect outlines the rectangle with corners (x0, y0) and (x1, y1).
func (c *Canvas) StrokeRect(x0, y0, x1, y1 int) {
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x1, y0, x1, y1)
	c.DrawLine(x1, y1, x0, y1)
	c.DrawLine(x0, y1, x0, y0)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Image rasterizes the canvas, each cell becoming a charW x charH block.
func (c *Canvas) Image(charW, charH int, fg color.Color) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, fg})
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := col*charW+dx*dotW, row*charH+dy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(x0+px, y0+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

// SVG renders every lit dot as a circle, scale pixels per dot.
func (c *Canvas) SVG(scale float64, fill string) string {
	w, h := c.Dots()
	width, height := float64(w)*scale, float64(h)*scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fill))

	r := scale * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.IsSet(x, y) {
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, r))
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
