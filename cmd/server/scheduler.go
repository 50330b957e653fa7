package main

import (
	"context"
	"log"
	"sync"

	fractex "github.com/rice8y/FracTeX"
	"seehuhn.de/go/geom/vec"
)

// tileScheduler hands out tiles of one sampling job to workers and
// assembles their results into a row-major value buffer.
type tileScheduler struct {
	kind    fractex.GridKind
	grid    fractex.Grid
	maxIter int

	cols, rows int
	vals       []float64

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalSamples    int
	finishedSamples int
	workers         int

	unstarted map[fractex.Tile]struct{}
	inProcess map[fractex.Tile]struct{}
	m         sync.Mutex
}

func newTileScheduler(kind fractex.GridKind, grid fractex.Grid, maxIter int) *tileScheduler {
	cols, rows := grid.Cols(), grid.Rows()
	tiles := fractex.SplitTiles(cols, rows, 64, 64)
	unstarted := make(map[fractex.Tile]struct{}, len(tiles))
	for _, t := range tiles {
		unstarted[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &tileScheduler{
		kind:         kind,
		grid:         grid,
		maxIter:      maxIter,
		cols:         cols,
		rows:         rows,
		vals:         make([]float64, cols*rows),
		totalSamples: cols * rows,
		unstarted:    unstarted,
		inProcess:    make(map[fractex.Tile]struct{}),
		ctx:          ctx,
		ctxCancel:    cancel,
	}
}

// popTile hands out an unstarted tile. Once all tiles are started it
// re-dispatches in-flight tiles, so a slow worker cannot stall the job.
func (s *tileScheduler) popTile() (tile fractex.Tile, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}
		return tile, true
	}

	return fractex.Tile{}, false
}

func (s *tileScheduler) task(t fractex.Tile) fractex.TileTask {
	return fractex.TileTask{
		Fractal: s.kind,
		Grid:    s.grid,
		MaxIter: s.maxIter,
		Tile:    t,
	}
}

func (s *tileScheduler) tileFinished(res fractex.TileResult) {
	defer log.Printf("finished: %f", s.finished())

	t := res.Tile
	if len(res.Records) != t.Cols*t.Rows {
		log.Printf("dropping tile %+v: got %d records, want %d", t, len(res.Records), t.Cols*t.Rows)
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	k := 0
	for i := t.I0; i < t.I0+t.Cols; i++ {
		for j := t.J0; j < t.J0+t.Rows; j++ {
			s.vals[i*s.rows+j] = res.Records[k].Value
			k++
		}
	}

	if _, found := s.inProcess[t]; found {
		s.finishedSamples += t.Cols * t.Rows
	}
	delete(s.inProcess, t)

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
}

func (s *tileScheduler) finished() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedSamples) / float32(s.totalSamples)
}

func (s *tileScheduler) progress() fractex.Progress {
	s.m.Lock()
	defer s.m.Unlock()
	return fractex.Progress{
		Done:    s.finishedSamples,
		Total:   s.totalSamples,
		Workers: s.workers,
	}
}

// records blocks until the job is complete, then returns the full record
// sequence in row-major order with x as the outer loop.
func (s *tileScheduler) records() []fractex.SampleRecord {
	<-s.ctx.Done()

	recs := make([]fractex.SampleRecord, 0, s.totalSamples)
	for i := 0; i < s.cols; i++ {
		x := s.grid.X(i)
		for j := 0; j < s.rows; j++ {
			recs = append(recs, fractex.SampleRecord{
				Pos:   vec.Vec2{X: x, Y: s.grid.Y(j)},
				Value: s.vals[i*s.rows+j],
			})
		}
	}
	return recs
}

func (s *tileScheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *tileScheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}
