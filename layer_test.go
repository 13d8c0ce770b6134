package panzoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLayer_Bounds(t *testing.T) {
	l := NewLayer(800, 600, PatternNone, 0)
	b := l.Bounds()
	if b.X != 0 || b.Y != 0 || b.Width != 800 || b.Height != 600 {
		t.Errorf("bounds = %+v", b)
	}

	l.Resize(1024, 768)
	if b := l.Bounds(); b.Width != 1024 || b.Height != 768 {
		t.Errorf("bounds after resize = %+v", b)
	}
}

func TestLayer_TransformRoundTrip(t *testing.T) {
	l := NewLayer(800, 600, PatternNone, 0)
	if l.Transform() != identityTransform {
		t.Errorf("initial transform = %v", l.Transform())
	}

	m := [6]float64{2, 0, 0, 2, 30, -10}
	l.SetTransform(m)
	if l.Transform() != m {
		t.Errorf("transform = %v, want %v", l.Transform(), m)
	}
}

func TestLayer_GeoM(t *testing.T) {
	l := NewLayer(800, 600, PatternNone, 0)
	l.SetTransform([6]float64{2, 0, 0, 2, 30, -10})

	g := l.GeoM()
	x, y := g.Apply(100, 50)
	if !approxEqual(x, 230, epsilon) || !approxEqual(y, 90, epsilon) {
		t.Errorf("GeoM.Apply(100,50) = (%f,%f), want (230,90)", x, y)
	}
}

func TestLayer_AttachDetach(t *testing.T) {
	l := NewLayer(100, 100, PatternNone, 0)
	img := ebiten.NewImage(100, 100)

	var order []int
	h1 := l.Attach(func(*ebiten.Image, ebiten.GeoM) { order = append(order, 1) })
	h2 := l.Attach(func(*ebiten.Image, ebiten.GeoM) { order = append(order, 2) })
	l.Attach(func(*ebiten.Image, ebiten.GeoM) { order = append(order, 3) })

	l.Draw(img)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("hook order = %v", order)
	}

	order = nil
	h2.Detach()
	l.Draw(img)
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Fatalf("hook order after detach = %v", order)
	}

	// Detach is safe to repeat.
	h2.Detach()
	h1.Detach()
	h1.Detach()
	order = nil
	l.Draw(img)
	if len(order) != 1 || order[0] != 3 {
		t.Fatalf("hook order after repeated detach = %v", order)
	}
}

func TestLayer_DrawPassesTransform(t *testing.T) {
	l := NewLayer(100, 100, PatternNone, 0)
	l.SetTransform([6]float64{3, 0, 0, 3, 5, 7})
	img := ebiten.NewImage(100, 100)

	var gotX, gotY float64
	l.Attach(func(_ *ebiten.Image, geom ebiten.GeoM) {
		gotX, gotY = geom.Apply(10, 10)
	})
	l.Draw(img)

	if !approxEqual(gotX, 35, epsilon) || !approxEqual(gotY, 37, epsilon) {
		t.Errorf("hook transform applied (10,10) -> (%f,%f), want (35,37)", gotX, gotY)
	}
}

func TestLayer_DefaultTile(t *testing.T) {
	l := NewLayer(100, 100, PatternGrid, 0)
	if l.tile != defaultPatternTile {
		t.Errorf("tile = %f, want default %f", l.tile, defaultPatternTile)
	}
	l = NewLayer(100, 100, PatternGrid, 25)
	if l.tile != 25 {
		t.Errorf("tile = %f, want 25", l.tile)
	}
}
