package compose

// Point is a position on a page canvas, in points, measured from the
// bottom-left corner.
type Point struct {
	X float64
	Y float64
}

// Size is a page extent in points.
type Size struct {
	W float64
	H float64
}

// Auto is the sentinel coordinate selecting auto-centered placement.
// Any negative coordinate is treated as the sentinel.
const Auto = -1

// ResolvePlacement computes the offset at which content of the given size is
// overlaid onto a master canvas. A negative x or y selects centering on that
// axis; otherwise the explicit value is used unchanged. The result is not
// bounds-checked: content placed partly or wholly off-canvas clips visually.
func ResolvePlacement(master, content Size, x, y float64) Point {
	p := Point{X: x, Y: y}
	if x < 0 {
		p.X = (master.W - content.W) / 2
	}
	if y < 0 {
		p.Y = (master.H - content.H) / 2
	}
	return p
}
