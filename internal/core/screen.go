package core

import (
	"math"
	"strings"
)

// World units covered by one terminal cell. Sprites and speeds are tuned
// in world units; the screen projects them onto the character grid.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cell is a single character on the screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Sprite is a drawable image made of text rows. Spaces are transparent.
type Sprite struct {
	Rows  []string
	Color Color
}

// Cols returns the width of the widest row in cells.
func (s Sprite) Cols() int {
	cols := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols
}

// Extent returns the sprite size in world units.
func (s Sprite) Extent() Extent {
	return Extent{
		Width:  float64(s.Cols() * CellWidth),
		Height: float64(len(s.Rows) * CellHeight),
	}
}

// Screen is a 2D character buffer and the drawing surface of the game.
// World-coordinate draw calls have the current offset subtracted and are
// projected onto cells; cell-coordinate helpers bypass the offset.
type Screen struct {
	width   int
	height  int
	cells   [][]Cell
	offsetX float64
	offsetY float64
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// WorldExtent returns the screen size in world units.
func (s *Screen) WorldExtent() Extent {
	return Extent{Width: float64(s.width * CellWidth), Height: float64(s.height * CellHeight)}
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// SetOffset sets the world position of the screen's top-left corner.
func (s *Screen) SetOffset(x, y float64) {
	s.offsetX = x
	s.offsetY = y
}

// Offset returns the current draw offset.
func (s *Screen) Offset() (float64, float64) {
	return s.offsetX, s.offsetY
}

// toCell projects a world coordinate onto the cell grid.
func (s *Screen) toCell(x, y float64) (int, int) {
	cx := int(math.Floor((x - s.offsetX) / CellWidth))
	cy := int(math.Floor((y - s.offsetY) / CellHeight))
	return cx, cy
}

// DrawImage draws a sprite whose top-left corner is at world (x, y).
// w and h clip the sprite to the given world size.
func (s *Screen) DrawImage(img Sprite, x, y, w, h float64) {
	cx, cy := s.toCell(x, y)
	maxCols := int(math.Ceil(w / CellWidth))
	maxRows := int(math.Ceil(h / CellHeight))

	for dy, row := range img.Rows {
		if dy >= maxRows {
			break
		}
		for dx, r := range []rune(row) {
			if dx >= maxCols {
				break
			}
			if r == ' ' {
				continue
			}
			s.SetColored(cx+dx, cy+dy, r, img.Color)
		}
	}
}

// Headline text size at and above which DrawText spaces out the letters.
const headlineSize = 40

// DrawText writes text at world (x, y). Large sizes are letter-spaced
// since a terminal has a single font size.
func (s *Screen) DrawText(text string, size int, x, y float64) {
	if size >= headlineSize {
		text = strings.Join(strings.Split(text, ""), " ")
	}
	cx, cy := s.toCell(x, y)
	s.DrawTextAt(cx, cy, text)
}

// Set places a rune at the given cell with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given cell.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawTextAt writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawTextAt(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextAt(x, y, text)
}

// FillCells fills a rectangular cell area with the given rune.
func (s *Screen) FillCells(x, y, w, h int, fill rune) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.Set(col, row, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	right := x + w - 1
	bottom := y + h - 1

	// Corners
	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	// Horizontal edges
	for col := x + 1; col < right; col++ {
		s.Set(col, y, '─')
		s.Set(col, bottom, '─')
	}

	// Vertical edges
	for row := y + 1; row < bottom; row++ {
		s.Set(x, row, '│')
		s.Set(right, row, '│')
	}
}

// CopyFrom copies the overlapping region of src into s.
func (s *Screen) CopyFrom(src *Screen) {
	h := Min(s.height, src.height)
	w := Min(s.width, src.width)
	for y := 0; y < h; y++ {
		copy(s.cells[y][:w], src.cells[y][:w])
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
