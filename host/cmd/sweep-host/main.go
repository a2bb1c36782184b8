package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"sonarsweep/host/serial"
	"sonarsweep/host/sweep"
	"sonarsweep/host/ws"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate")
	listen  = flag.String("listen", ":8080", "WebSocket feed listen address (empty to disable)")
	settle  = flag.Duration("settle", sweep.DefaultSettle, "Delay before sending RDY (device reset time)")
	verbose = flag.Bool("verbose", false, "Log every sample and protocol event")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to sweep device on %s @ %d baud...\n", cfg.Device, cfg.Baud)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *ws.Hub
	if *listen != "" {
		hub = ws.NewHub()
		go hub.Run(ctx)

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Printf("sample feed on ws://%s/ws", *listen)
			if err := http.ListenAndServe(*listen, mux); err != nil {
				log.Fatalf("feed server: %v", err)
			}
		}()
	}

	client := sweep.NewClient(port, func(s sweep.Sample) {
		if *verbose {
			log.Printf("step %2d (%5.1f deg): %.3f cm valid=%v", s.Step, s.AngleDeg, s.DistanceCM, s.Valid)
		}
		if hub != nil {
			hub.BroadcastSample(s)
		}
	})
	if *verbose {
		client.SetLogf(log.Printf)
	}

	if err := client.Start(*settle); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	err = client.Run()
	log.Printf("device stream ended after %s (%d unrecognized lines)",
		time.Since(start).Round(time.Second), client.UnknownLines())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
