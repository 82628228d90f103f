// profview tails the profiling log stream of a target over a serial
// device (or replays a captured file) and prints per-label timing
// statistics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"microprof/host/serial"
	"microprof/host/trace"
)

var (
	device  = flag.String("device", "", "Serial device path (e.g. /dev/ttyACM0)")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	file    = flag.String("file", "", "Replay a captured log file instead of a device")
	verbose = flag.Bool("verbose", false, "Echo every snapshot line as it arrives")
)

func main() {
	flag.Parse()

	in, err := openInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	agg := trace.NewAggregator()

	// Dump the summary on Ctrl-C; serial streams have no natural end.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	records := make(chan trace.Record, 64)
	go func() {
		defer close(records)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if record, ok := trace.ParseLine(scanner.Text()); ok {
				records <- record
			}
		}
	}()

loop:
	for {
		select {
		case <-sig:
			break loop
		case record, ok := <-records:
			if !ok {
				break loop
			}
			if *verbose {
				fmt.Printf("%s: %dµs\n", record.Name, record.Micros)
			}
			agg.Add(record)
		}
	}

	fmt.Println()
	if err := agg.WriteReport(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openInput picks the snapshot source: a serial device, a capture file,
// or stdin.
func openInput() (io.ReadCloser, error) {
	switch {
	case *device != "" && *file != "":
		return nil, fmt.Errorf("-device and -file are mutually exclusive")

	case *device != "":
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		port, err := serial.Open(cfg)
		if err != nil {
			return nil, err
		}
		return port, nil

	case *file != "":
		return os.Open(*file)

	default:
		return io.NopCloser(os.Stdin), nil
	}
}
