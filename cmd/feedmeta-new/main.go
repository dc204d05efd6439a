package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/goliatone/go-feedmeta/pkg/wizard"
)

func main() {
	output := flag.String("output", "", "Write the entry fragment to this file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nInteractively build a feed entry with item-type metadata.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := wizard.New()
	if err != nil {
		log.Fatalf("Failed to start wizard: %v", err)
	}

	result, err := w.Run(ctx)
	if err != nil {
		if errors.Is(err, wizard.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}
		log.Fatalf("Wizard failed: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Fragment, 0o644); err != nil {
			log.Fatalf("Failed to write fragment: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
		return
	}
	os.Stdout.Write(result.Fragment)
}
