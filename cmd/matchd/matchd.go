package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ha/matchd/peer"
)

// Flags
var (
	file  = flag.String("f", "", "Read preference tables from this JSON file.")
	n     = flag.Int("n", 5, "Population size for a random instance.")
	seed  = flag.Int64("seed", 1, "Seed for random instances.")
	quiet = flag.Bool("q", false, "Suppress the message trace.")
)

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	pprefs := peer.RandomPrefs(*n, *seed)
	aprefs := peer.RandomPrefs(*n, *seed+1)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		c, err := peer.Load(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pprefs, aprefs = c.Proposers, c.Acceptors
	}

	if err := peer.Run(pprefs, aprefs, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
