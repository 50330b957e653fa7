package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"net/rpc"
	"os"

	fractex "github.com/rice8y/FracTeX"
)

// The client is the plotting collaborator: it waits for the coordinator
// to finish the current job and writes the record sequence as a plain
// "x y value" coordinate table, ready for pgfplots-style consumption.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("tcp", ":8081", "coordinator tcp address")
	out := flag.String("o", "fractal.dat", "output coordinate table")
	flag.Parse()

	fractex.RegisterWireTypes()

	log.Printf("connecting")
	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		return err
	}
	client := rpc.NewClient(conn)
	defer client.Close()

	log.Println("asking coordinator for the finished record sequence")
	var reply fractex.RecordsReply
	if err := client.Call("Coordinator.Records", fractex.None{}, &reply); err != nil {
		return fmt.Errorf("records: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, rec := range reply.Records {
		if _, err := fmt.Fprintf(w, "%g %g %g\n", rec.Pos.X, rec.Pos.Y, rec.Value); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Printf("wrote %d records to %q", len(reply.Records), *out)
	return nil
}
