package fractex

import (
	"fmt"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Tile is a rectangular block of grid indices, the unit of work
// distribution.
type Tile struct {
	I0, J0     int // first column / row index in the full grid
	Cols, Rows int
}

// defaultTileSize is the edge length used by SampleGridParallel.
const defaultTileSize = 64

// SplitTiles splits a cols x rows index grid into tiles of size
// tileCols x tileRows. Tiles at the right and bottom edges are smaller
// if the grid is not divisible.
func SplitTiles(cols, rows, tileCols, tileRows int) []Tile {
	if tileCols <= 0 || tileRows <= 0 {
		panic("fractex: tile dimensions must be positive")
	}

	var tiles []Tile
	for j := 0; j < rows; j += tileRows {
		th := min(tileRows, rows-j)
		for i := 0; i < cols; i += tileCols {
			tw := min(tileCols, cols-i)
			tiles = append(tiles, Tile{I0: i, J0: j, Cols: tw, Rows: th})
		}
	}
	return tiles
}

func checkGridArgs(f GridKind, g Grid, maxIter int) error {
	if err := f.validate(); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if maxIter <= 0 {
		return fmt.Errorf("max iterations %d: %w", maxIter, ErrInvalidBudget)
	}
	return nil
}

// SampleGrid emits one record per grid point in row-major order with x
// as the outer loop. All arguments are validated before the first record
// is emitted.
func SampleGrid(f GridKind, g Grid, maxIter int, em SampleEmitter) error {
	if err := checkGridArgs(f, g, maxIter); err != nil {
		return err
	}
	cols, rows := g.Cols(), g.Rows()
	for i := 0; i < cols; i++ {
		x := g.X(i)
		for j := 0; j < rows; j++ {
			y := g.Y(j)
			rec := SampleRecord{Pos: vec.Vec2{X: x, Y: y}, Value: f.Sample(x, y, maxIter)}
			if err := em.EmitSample(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// SampleTile computes the records for one tile of the grid, in row-major
// order within the tile. Tiles of the same grid are independent and may
// be computed concurrently.
func SampleTile(f GridKind, g Grid, maxIter int, t Tile) ([]SampleRecord, error) {
	if err := checkGridArgs(f, g, maxIter); err != nil {
		return nil, err
	}
	recs := make([]SampleRecord, 0, t.Cols*t.Rows)
	for i := t.I0; i < t.I0+t.Cols; i++ {
		x := g.X(i)
		for j := t.J0; j < t.J0+t.Rows; j++ {
			y := g.Y(j)
			recs = append(recs, SampleRecord{
				Pos:   vec.Vec2{X: x, Y: y},
				Value: f.Sample(x, y, maxIter),
			})
		}
	}
	return recs, nil
}

// SampleGridParallel computes the same record sequence as SampleGrid,
// partitioning the grid into tiles fanned out over a worker pool. Each
// worker writes into its own slice region of a shared buffer, and the
// buffer is emitted row-major afterwards, so the output is identical to
// the sequential sampler's.
func SampleGridParallel(f GridKind, g Grid, maxIter, workers int, em SampleEmitter) error {
	if err := checkGridArgs(f, g, maxIter); err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	cols, rows := g.Cols(), g.Rows()
	vals := make([]float64, cols*rows)

	tasks := make(chan Tile)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				for i := t.I0; i < t.I0+t.Cols; i++ {
					x := g.X(i)
					for j := t.J0; j < t.J0+t.Rows; j++ {
						vals[i*rows+j] = f.Sample(x, g.Y(j), maxIter)
					}
				}
			}
		}()
	}
	for _, t := range SplitTiles(cols, rows, defaultTileSize, defaultTileSize) {
		tasks <- t
	}
	close(tasks)
	wg.Wait()

	for i := 0; i < cols; i++ {
		x := g.X(i)
		for j := 0; j < rows; j++ {
			rec := SampleRecord{Pos: vec.Vec2{X: x, Y: g.Y(j)}, Value: vals[i*rows+j]}
			if err := em.EmitSample(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
