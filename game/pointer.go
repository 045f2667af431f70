package game

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource supplies the newest normalized pointer detection.
// Implementations wrap an external detector (hand tracker bridge, mouse).
type PointerSource interface {
	// Sample returns normalized coordinates in [0,1] per axis and whether
	// a detection exists right now. Implementations must report ok=false
	// instead of repeating a stale detection.
	Sample() (x, y float64, ok bool)

	// Ready reports whether the underlying frame source is delivering at
	// all. The game stays in the menu until the source is ready.
	Ready() bool
}

// PointerAdapter converts a source's normalized output into a mirrored
// screen-space target point, or "no signal" for the frame.
type PointerAdapter struct {
	Source PointerSource

	// Mirror flips the horizontal axis. Camera-backed sources set it so
	// the snake follows the player's hand like a mirror.
	Mirror bool
}

// Target returns the screen-space target for the current frame. The
// result is recomputed fully on every call; a lost signal yields ok=false,
// never a previous point.
func (a PointerAdapter) Target(width, height float64) (Point, bool) {
	if a.Source == nil {
		return Point{}, false
	}
	nx, ny, ok := a.Source.Sample()
	if !ok {
		return Point{}, false
	}
	if a.Mirror {
		nx = 1 - nx
	}
	return Point{X: nx * width, Y: ny * height}, true
}

// Ready reports whether the underlying source is delivering.
func (a PointerAdapter) Ready() bool {
	return a.Source != nil && a.Source.Ready()
}

// MousePointer steers with the OS cursor. It is the local fallback when
// no hand tracker is attached and is always ready.
type MousePointer struct{}

// Sample normalizes the cursor position against the current window size.
func (MousePointer) Sample() (float64, float64, bool) {
	w, h := ebiten.WindowSize()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 || cx > w || cy > h {
		return 0, 0, false
	}
	return float64(cx) / float64(w), float64(cy) / float64(h), true
}

// Ready always reports true; the cursor needs no warm-up.
func (MousePointer) Ready() bool { return true }
