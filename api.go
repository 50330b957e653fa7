package fractex

import (
	"encoding/gob"
	"sync"
)

// Wire types shared by the coordinator and its workers. The coordinator
// hands out TileTasks; workers answer with TileResults. Transport is
// net/rpc over gob, so the concrete fractal kinds must be registered on
// both ends via RegisterWireTypes.

// TileTask describes one tile of a sampling job.
type TileTask struct {
	Fractal GridKind
	Grid    Grid
	MaxIter int
	Tile    Tile
}

// TileResult carries the records of one computed tile, in the tile's
// row-major order.
type TileResult struct {
	Tile    Tile
	Records []SampleRecord
}

// Progress is a snapshot of a sampling job.
type Progress struct {
	Done    int // finished samples
	Total   int
	Workers int
}

// None is the empty argument/reply for rpc calls that need neither.
type None struct{}

// NextTileReply is the coordinator's answer to a work request. Found is
// false once the job is complete.
type NextTileReply struct {
	Found bool
	Task  TileTask
}

// RecordsReply carries the finished record sequence in row-major order.
type RecordsReply struct {
	Records []SampleRecord
}

var registerOnce sync.Once

// RegisterWireTypes registers the concrete grid kinds with gob so they
// can travel inside the TileTask's interface field. Safe to call from
// multiple packages.
func RegisterWireTypes() {
	registerOnce.Do(func() {
		gob.Register(Mandelbrot{})
		gob.Register(Julia{})
		gob.Register(BurningShip{})
		gob.Register(Tricorn{})
		gob.Register(Buffalo{})
		gob.Register(Phoenix{})
		gob.Register(Magnet{})
		gob.Register(Multibrot{})
		gob.Register(Newton{})
		gob.Register(Lyapunov{})
	})
}
