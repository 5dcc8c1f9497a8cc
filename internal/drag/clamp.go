package drag

import "fyne.io/fyne/v2"

// Clamp restricts an element position given the element size.
type Clamp func(pos fyne.Position, size fyne.Size) fyne.Position

// Unclamped lets the element move anywhere.
func Unclamped(pos fyne.Position, _ fyne.Size) fyne.Position {
	return pos
}

// VerticalRail keeps the element at a fixed x and its top edge within
// [0, viewportHeight-elementHeight]. viewportHeight is read on every move so
// the rail follows window resizes.
func VerticalRail(x float32, viewportHeight func() float32) Clamp {
	return func(pos fyne.Position, size fyne.Size) fyne.Position {
		limit := viewportHeight() - size.Height
		y := min(max(pos.Y, 0), max(limit, 0))
		return fyne.NewPos(x, y)
	}
}
