package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"net/rpc"

	fractex "github.com/rice8y/FracTeX"
)

// main is the entry point for the sampling coordinator.
// Note: all computation is performed by workers; the coordinator only
// splits the grid into tiles and distributes them.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	kindName := flag.String("kind", "mandelbrot", "fractal kind (mandelbrot, julia, burningship, tricorn, buffalo, phoenix, magnet, multibrot, newton, lyapunov)")
	cre := flag.Float64("cre", -0.8, "c real part (julia, phoenix)")
	cim := flag.Float64("cim", 0.156, "c imaginary part (julia, phoenix)")
	p := flag.Float64("p", -0.5, "P parameter (phoenix)")
	degree := flag.Int("degree", 3, "degree (multibrot)")
	cols := flag.Int("cols", 960, "samples along x")
	rows := flag.Int("rows", 540, "samples along y")
	maxIter := flag.Int("maxiter", 1000, "iteration budget per sample")
	xmin := flag.Float64("xmin", math.NaN(), "domain x minimum (default per kind)")
	xmax := flag.Float64("xmax", math.NaN(), "domain x maximum (default per kind)")
	ymin := flag.Float64("ymin", math.NaN(), "domain y minimum (default per kind)")
	ymax := flag.Float64("ymax", math.NaN(), "domain y maximum (default per kind)")
	tcpAddr := flag.String("tcp", ":8081", "tcp listen address for workers and clients")
	httpPort := flag.Int("http", 8080, "http port for the websocket and progress endpoints")
	flag.Parse()

	kind, err := kindByName(*kindName, *cre, *cim, *p, *degree)
	if err != nil {
		return err
	}

	region := fractex.DefaultRegion(kind)
	if !math.IsNaN(*xmin) {
		region.Xmin = *xmin
	}
	if !math.IsNaN(*xmax) {
		region.Xmax = *xmax
	}
	if !math.IsNaN(*ymin) {
		region.Ymin = *ymin
	}
	if !math.IsNaN(*ymax) {
		region.Ymax = *ymax
	}

	grid := fractex.UniformGrid(region, *cols, *rows)
	if err := grid.Validate(); err != nil {
		return err
	}

	sched := newTileScheduler(kind, grid, *maxIter)

	fractex.RegisterWireTypes()
	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName("Coordinator", &coordinator{sched: sched}); err != nil {
		return fmt.Errorf("rpc register: %w", err)
	}

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(context.Background(), *httpPort, sched)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// The rpc server serves both listeners. Workers pull tiles, clients
	// wait on the finished record sequence.
	go serveRPC(rpcServer, tcpListener)
	go serveRPC(rpcServer, websocketListener)

	log.Printf("coordinator sampling %s over [%g,%g]x[%g,%g], %dx%d samples; waiting for workers",
		kind.Name(), region.Xmin, region.Xmax, region.Ymin, region.Ymax, *cols, *rows)
	select {}
}

func serveRPC(srv *rpc.Server, l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			log.Printf("accept on %s: %v", l.Addr(), err)
			return
		}
		go srv.ServeConn(conn)
	}
}

// kindByName maps the CLI kind flag onto the engine's sum type. The
// string exists only at this boundary.
func kindByName(name string, cre, cim, p float64, degree int) (fractex.GridKind, error) {
	switch name {
	case "mandelbrot":
		return fractex.Mandelbrot{}, nil
	case "julia":
		return fractex.Julia{CRe: cre, CIm: cim}, nil
	case "burningship":
		return fractex.BurningShip{}, nil
	case "tricorn":
		return fractex.Tricorn{}, nil
	case "buffalo":
		return fractex.Buffalo{}, nil
	case "phoenix":
		return fractex.Phoenix{CRe: cre, CIm: cim, P: p}, nil
	case "magnet":
		return fractex.Magnet{}, nil
	case "multibrot":
		return fractex.Multibrot{Degree: degree}, nil
	case "newton":
		return fractex.Newton{}, nil
	case "lyapunov":
		return fractex.Lyapunov{}, nil
	}
	return nil, fmt.Errorf("unknown fractal kind %q", name)
}
