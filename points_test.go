package fractex

import (
	"errors"
	"math/rand"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestGingerbreadmanSequence(t *testing.T) {
	var buf Buffer
	if err := GeneratePoints(Gingerbreadman{}, 3, &buf); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	want := []vec.Vec2{
		{X: 1.0, Y: -0.1},
		{X: 2.1, Y: 1.0},
		{X: 2.1, Y: 2.1},
	}
	if len(buf.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(buf.Points), len(want))
	}
	for i, p := range buf.Points {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestGingerbreadmanReproducible(t *testing.T) {
	var a, b Buffer
	if err := GeneratePoints(Gingerbreadman{}, 500, &a); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	if err := GeneratePoints(Gingerbreadman{}, 500, &b); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestSierpinskiBounds(t *testing.T) {
	var buf Buffer
	if err := GeneratePoints(Sierpinski{}, 2000, &buf, WithSeed(1)); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	if len(buf.Points) != 2000 {
		t.Fatalf("got %d points, want 2000", len(buf.Points))
	}
	for i, p := range buf.Points {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 0.87 {
			t.Fatalf("point %d = %v outside triangle bounds", i, p)
		}
	}
}

func TestBarnsleyFernBounds(t *testing.T) {
	var buf Buffer
	if err := GeneratePoints(BarnsleyFern{}, 5000, &buf, WithSeed(7)); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	for i, p := range buf.Points {
		if p.X < -3 || p.X > 3 || p.Y < 0 || p.Y > 10 {
			t.Fatalf("point %d = %v outside fern bounds", i, p)
		}
	}
}

func TestSeededGenerationReproducible(t *testing.T) {
	kinds := []PointKind{BarnsleyFern{}, Sierpinski{}}
	for _, k := range kinds {
		var a, b Buffer
		if err := GeneratePoints(k, 300, &a, WithSeed(42)); err != nil {
			t.Fatalf("%s: GeneratePoints: %v", k.Name(), err)
		}
		if err := GeneratePoints(k, 300, &b, WithRand(rand.New(rand.NewSource(42)))); err != nil {
			t.Fatalf("%s: GeneratePoints: %v", k.Name(), err)
		}
		for i := range a.Points {
			if a.Points[i] != b.Points[i] {
				t.Fatalf("%s: point %d differs: %v vs %v", k.Name(), i, a.Points[i], b.Points[i])
			}
		}
	}
}

func TestGeneratePointsBadBudget(t *testing.T) {
	var buf Buffer
	for _, n := range []int{0, -5} {
		err := GeneratePoints(Sierpinski{}, n, &buf, WithSeed(1))
		if !errors.Is(err, ErrInvalidBudget) {
			t.Errorf("n=%d: err = %v, want ErrInvalidBudget", n, err)
		}
	}
	if len(buf.Points) != 0 {
		t.Errorf("emitted %d points before failing", len(buf.Points))
	}
}

func TestGeneratePointsEmitterError(t *testing.T) {
	stop := errors.New("stop")
	count := 0
	em := PointEmitterFunc(func(vec.Vec2) error {
		count++
		if count == 4 {
			return stop
		}
		return nil
	})
	err := GeneratePoints(Gingerbreadman{}, 100, em)
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want emitter error", err)
	}
	if count != 4 {
		t.Errorf("emitter called %d times, want 4", count)
	}
}
