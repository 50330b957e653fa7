package fractex

import (
	"bytes"
	"encoding/gob"
	"testing"
)

func TestTileTaskWireRoundTrip(t *testing.T) {
	RegisterWireTypes()

	kind := Julia{CRe: -0.8, CIm: 0.156}
	task := TileTask{
		Fractal: kind,
		Grid:    UniformGrid(DefaultRegion(kind), 32, 32),
		MaxIter: 100,
		Tile:    Tile{I0: 8, J0: 16, Cols: 8, Rows: 8},
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(task); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got TileTask
	if err := gob.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	j, ok := got.Fractal.(Julia)
	if !ok {
		t.Fatalf("decoded kind is %T, want Julia", got.Fractal)
	}
	if j != kind {
		t.Errorf("decoded kind = %+v, want %+v", j, kind)
	}
	if got.Tile != task.Tile || got.Grid != task.Grid || got.MaxIter != task.MaxIter {
		t.Errorf("decoded task = %+v, want %+v", got, task)
	}

	// The decoded kind must sample identically.
	if a, b := kind.Sample(0.1, 0.2, 50), got.Fractal.Sample(0.1, 0.2, 50); a != b {
		t.Errorf("decoded kind samples %g, want %g", b, a)
	}
}
