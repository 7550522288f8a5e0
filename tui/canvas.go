// ABOUTME: Cell grid the board is painted onto before it becomes a string
// ABOUTME: Items overlap while dragging, so boxes are composed cell by cell with clipping

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paint is an index into the canvas palette
type paint uint8

// Palette entries
const (
	paintNone paint = iota
	paintHeader
	paintHeaderDisabled
	paintHeaderOver
	paintRule
	paintItem
	paintItemFocused
	paintItemDisplaced
	paintItemDisabled
	paintItemDragging
	paintCount
)

var palette = [paintCount]lipgloss.Style{
	paintNone:           lipgloss.NewStyle(),
	paintHeader:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	paintHeaderDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	paintHeaderOver:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
	paintRule:           lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	paintItem:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	paintItemFocused:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	paintItemDisplaced:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	paintItemDisabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	paintItemDragging:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

// cell holds one terminal column. A wide rune occupies its cell with width 2
// and the next cell with width 0.
type cell struct {
	r     rune
	p     paint
	width uint8
}

var blank = cell{r: ' ', width: 1}

func (cl cell) isContinuation() bool {
	return cl.width == 0
}

// box is an integer cell rectangle, right and bottom exclusive
type box struct {
	left, top, right, bottom int
}

func (b box) intersect(o box) box {
	return box{
		left:   max(b.left, o.left),
		top:    max(b.top, o.top),
		right:  min(b.right, o.right),
		bottom: min(b.bottom, o.bottom),
	}
}

func (b box) contains(x, y int) bool {
	return x >= b.left && x < b.right && y >= b.top && y < b.bottom
}

type canvas struct {
	width, height int
	cells         []cell
}

func newCanvas(width, height int) *canvas {
	width, height = max(width, 0), max(height, 0)
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}

	for i := range c.cells {
		c.cells[i] = blank
	}

	return c
}

func (c *canvas) bounds() box {
	return box{right: c.width, bottom: c.height}
}

func (c *canvas) at(x, y int) *cell {
	return &c.cells[y*c.width+x]
}

// clearWide blanks the whole wide rune covering (x, y), if any
func (c *canvas) clearWide(x, y int) {
	switch cl := c.at(x, y); {
	case cl.isContinuation():
		if x > 0 {
			*c.at(x-1, y) = blank
		}

		*cl = blank
	case cl.width == 2:
		*cl = blank

		if x+1 < c.width {
			*c.at(x+1, y) = blank
		}
	}
}

// set paints r at (x, y). A wide rune that would be cut by the clip or the
// canvas edge is painted as a space instead.
func (c *canvas) set(x, y int, r rune, width int, p paint, clip box) {
	area := clip.intersect(c.bounds())
	if !area.contains(x, y) {
		return
	}

	c.clearWide(x, y)

	if width == 2 && !area.contains(x+1, y) {
		*c.at(x, y) = cell{r: ' ', p: p, width: 1}
		return
	}

	if width == 2 {
		c.clearWide(x+1, y)
		*c.at(x+1, y) = cell{p: p, width: 0}
	}

	*c.at(x, y) = cell{r: r, p: p, width: uint8(width)}
}

// text paints s from (x, y) on one line, advancing by display width
func (c *canvas) text(x, y int, s string, p paint, clip box) {
	for _, r := range ansi.Strip(s) {
		width := ansi.StringWidth(string(r))
		if width == 0 {
			continue
		}

		c.set(x, y, r, min(width, 2), p, clip)
		x += width
	}
}

// block paints a multi-line rendered string with its top-left at (x, y)
func (c *canvas) block(x, y int, rendered string, p paint, clip box) {
	for i, line := range strings.Split(rendered, "\n") {
		c.text(x, y+i, line, p, clip)
	}
}

// String renders the grid, styling each run of equal paint once
func (c *canvas) String() string {
	var sb strings.Builder

	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}

		row := c.cells[y*c.width : (y+1)*c.width]
		start := 0

		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].p == row[start].p {
				continue
			}

			var run strings.Builder
			for _, cl := range row[start:x] {
				if !cl.isContinuation() {
					run.WriteRune(cl.r)
				}
			}

			if row[start].p == paintNone {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(palette[row[start].p].Render(run.String()))
			}

			start = x
		}
	}

	return sb.String()
}

// plain renders the grid without styling
func (c *canvas) plain() string {
	var sb strings.Builder

	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if !cl.isContinuation() {
				sb.WriteRune(cl.r)
			}
		}
	}

	return sb.String()
}
