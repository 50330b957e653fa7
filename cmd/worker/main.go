package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/rpc"

	"github.com/coder/websocket"
	fractex "github.com/rice8y/FracTeX"
)

// A worker dials the coordinator, pulls tiles, samples them locally and
// submits the results. It exits once the coordinator reports no work
// left.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	tcpAddr := flag.String("tcp", ":8081", "coordinator tcp address")
	wsURL := flag.String("ws", "", "coordinator websocket url, e.g. ws://host:8080/ws (overrides -tcp)")
	flag.Parse()

	fractex.RegisterWireTypes()

	log.Printf("connecting")
	conn, err := dial(*tcpAddr, *wsURL)
	if err != nil {
		return err
	}
	client := rpc.NewClient(conn)
	defer client.Close()

	var none fractex.None
	if err := client.Call("Coordinator.Hello", fractex.None{}, &none); err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	defer client.Call("Coordinator.Goodbye", fractex.None{}, &none)

	for {
		var reply fractex.NextTileReply
		if err := client.Call("Coordinator.NextTile", fractex.None{}, &reply); err != nil {
			return fmt.Errorf("next tile: %w", err)
		}
		if !reply.Found {
			break
		}

		task := reply.Task
		log.Printf("sampling %s tile %+v", task.Fractal.Name(), task.Tile)
		recs, err := fractex.SampleTile(task.Fractal, task.Grid, task.MaxIter, task.Tile)
		if err != nil {
			return fmt.Errorf("sample tile: %w", err)
		}

		res := fractex.TileResult{Tile: task.Tile, Records: recs}
		if err := client.Call("Coordinator.SubmitTile", res, &none); err != nil {
			return fmt.Errorf("submit tile: %w", err)
		}
	}

	log.Printf("no work left; exiting")
	return nil
}

func dial(tcpAddr, wsURL string) (net.Conn, error) {
	if wsURL == "" {
		return net.Dial("tcp", tcpAddr)
	}
	c, _, err := websocket.Dial(context.Background(), wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}
	return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
}
