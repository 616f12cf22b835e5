//go:generate mockgen -source=surface.go -destination=surface_mock.go -package=render
package render

// Surface is a 2D drawing target with a translate/save/restore transform stack
type Surface interface {
	Size() (width, height float64)
	SetFillStyle(color string)
	FillRect(x, y, width, height float64)
	FillCircle(cx, cy, radius float64)
	Translate(dx, dy float64)
	Save()
	Restore()
}
