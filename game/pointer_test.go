package game

import (
	"math"
	"testing"
)

func TestPointerAdapterMirrorsAndScales(t *testing.T) {
	cases := []struct {
		name   string
		mirror bool
		nx, ny float64
		want   Point
	}{
		{"mirrored left becomes right", true, 0.0, 0.0, Point{X: 1024, Y: 0}},
		{"mirrored right becomes left", true, 1.0, 0.5, Point{X: 0, Y: 384}},
		{"mirrored center stays put", true, 0.5, 0.5, Point{X: 512, Y: 384}},
		{"direct scales both axes", false, 0.25, 0.75, Point{X: 256, Y: 576}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := PointerAdapter{
				Source: &stubSource{x: tc.nx, y: tc.ny, ok: true, ready: true},
				Mirror: tc.mirror,
			}
			got, ok := a.Target(1024, 768)
			if !ok {
				t.Fatal("expected a signal")
			}
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Target = %v, want %v", got, tc.want)
			}
		})
	}
}

// A lost detection yields no signal, never a previous point.
func TestPointerAdapterNoSignal(t *testing.T) {
	src := &stubSource{x: 0.5, y: 0.5, ok: true, ready: true}
	a := PointerAdapter{Source: src, Mirror: true}

	if _, ok := a.Target(1024, 768); !ok {
		t.Fatal("expected a signal while the detector sees the hand")
	}

	src.ok = false
	if p, ok := a.Target(1024, 768); ok {
		t.Errorf("got stale target %v after signal loss", p)
	}
}

func TestPointerAdapterNilSource(t *testing.T) {
	var a PointerAdapter
	if _, ok := a.Target(1024, 768); ok {
		t.Error("nil source produced a target")
	}
	if a.Ready() {
		t.Error("nil source reported ready")
	}
}
