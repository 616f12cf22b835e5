package render

import "math"

// transform is one entry of the canvas save stack
type transform struct {
	tx, ty float64
	fill   string
}

// Canvas is an in-memory raster addressed in pixels, two pixels per terminal cell vertically
type Canvas struct {
	cols   int
	rows   int
	pixels []string
	fill   string
	tx, ty float64
	stack  []transform
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)

	return c
}

// Resize reallocates the raster, discarding its contents and transform stack
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.pixels = make([]string, c.cols*c.rows*2)
	c.stack = c.stack[:0]
	c.tx, c.ty = 0, 0
}

// Cols returns the width in terminal cells
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the height in terminal cells
func (c *Canvas) Rows() int {
	return c.rows
}

// Size returns the drawable area in pixels
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows * 2)
}

// SetFillStyle sets the color used by subsequent fills
func (c *Canvas) SetFillStyle(color string) {
	c.fill = color
}

// FillRect fills every pixel whose center lies inside the translated rectangle
func (c *Canvas) FillRect(x, y, width, height float64) {
	x0, y0 := x+c.tx, y+c.ty
	x1, y1 := x0+width, y0+height

	for py := max(int(math.Floor(y0)), 0); py < c.pixelHeight(); py++ {
		cy := float64(py) + 0.5
		if cy < y0 {
			continue
		}

		if cy >= y1 {
			break
		}

		for px := 0; px < c.cols; px++ {
			cx := float64(px) + 0.5
			if cx >= x0 && cx < x1 {
				c.set(px, py)
			}
		}
	}
}

// FillCircle fills every pixel whose center lies inside the translated circle
func (c *Canvas) FillCircle(cx, cy, radius float64) {
	if radius <= 0 {
		return
	}

	ox, oy := cx+c.tx, cy+c.ty
	minY := int(math.Floor(oy - radius))
	maxY := int(math.Ceil(oy + radius))
	minX := int(math.Floor(ox - radius))
	maxX := int(math.Ceil(ox + radius))

	for py := max(minY, 0); py <= min(maxY, c.pixelHeight()-1); py++ {
		dy := float64(py) + 0.5 - oy

		for px := max(minX, 0); px <= min(maxX, c.cols-1); px++ {
			dx := float64(px) + 0.5 - ox
			if dx*dx+dy*dy <= radius*radius {
				c.set(px, py)
			}
		}
	}
}

// Translate shifts the origin of subsequent drawing
func (c *Canvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

// Save pushes the current translation and fill style
func (c *Canvas) Save() {
	c.stack = append(c.stack, transform{tx: c.tx, ty: c.ty, fill: c.fill})
}

// Restore pops the last saved translation and fill style, no-op on an empty stack
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}

	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.tx, c.ty, c.fill = top.tx, top.ty, top.fill
}

// Pixel returns the color at pixel (x, y), empty when unset or out of range
func (c *Canvas) Pixel(x, y int) string {
	if x < 0 || y < 0 || x >= c.cols || y >= c.pixelHeight() {
		return ""
	}

	return c.pixels[y*c.cols+x]
}

// Cell returns the top and bottom pixel colors of a terminal cell
func (c *Canvas) Cell(col, row int) (top, bottom string) {
	return c.Pixel(col, row*2), c.Pixel(col, row*2+1)
}

func (c *Canvas) pixelHeight() int {
	return c.rows * 2
}

func (c *Canvas) set(x, y int) {
	c.pixels[y*c.cols+x] = c.fill
}
