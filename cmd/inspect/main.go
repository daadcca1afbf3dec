package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mdk754/libstatic/storage"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to a YAML scenario to replay")
		capacity     = flag.Int("cap", 8, "Container capacity for interactive mode")
		verbose      = flag.Bool("v", false, "Log storage operations")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		storage.SetLogger(logger.Named("storage"))
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*capacity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *scenarioFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -scenario <file.yaml> [-v]")
		fmt.Fprintln(os.Stderr, "       inspect -i [-cap n]  (interactive mode)")
		os.Exit(1)
	}

	if err := replay(*scenarioFile, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
