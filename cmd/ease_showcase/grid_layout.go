package main

import "math"

// GridLayout places n equally sized cells in rows on a fixed-size screen.
type GridLayout struct {
	Columns      int
	CellSize     float64
	Padding      float64
	ScreenWidth  int
	ScreenHeight int
}

// Rows returns the number of rows needed for n cells.
func (g GridLayout) Rows(n int) int {
	if g.Columns <= 0 || n <= 0 {
		return 0
	}
	return (n + g.Columns - 1) / g.Columns
}

// CellCenter returns the screen-space center of cell i. The grid is centered
// on the screen.
func (g GridLayout) CellCenter(i, n int) (x, y float64) {
	rows := g.Rows(n)
	step := g.CellSize + g.Padding
	gridW := float64(g.Columns)*step - g.Padding
	gridH := float64(rows)*step - g.Padding

	originX := (float64(g.ScreenWidth) - gridW) / 2
	originY := (float64(g.ScreenHeight) - gridH) / 2

	col := i % g.Columns
	row := i / g.Columns
	return originX + float64(col)*step + g.CellSize/2, originY + float64(row)*step + g.CellSize/2
}

// ScreenToWorld converts a screen point to world coordinates (origin at the
// screen center, +Y up).
func (g GridLayout) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - float64(g.ScreenWidth)/2, float64(g.ScreenHeight)/2 - sy
}

// FitColumns picks the column count that keeps the grid closest to square.
func FitColumns(n int) int {
	if n <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}
