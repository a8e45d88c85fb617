package main

import (
	"fmt"
	"os"

	"github.com/seralba/devsink/internal/config"
	"github.com/seralba/devsink/internal/logging"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: devsink <command> [flags]

Commands:
  send       build a syslog message and deliver it to a collector
  forward    read lines from stdin and fan them out to the configured sinks
  normalize  validate and canonicalize device names
  policy     inspect and toggle feature policies

Run 'devsink <command> -h' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devsink: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	var runErr error
	switch os.Args[1] {
	case "send":
		runErr = runSend(cfg, os.Args[2:])
	case "forward":
		runErr = runForward(cfg, os.Args[2:])
	case "normalize":
		runErr = runNormalize(os.Args[2:])
	case "policy":
		runErr = runPolicy(cfg, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "devsink: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "devsink: %v\n", runErr)
		os.Exit(1)
	}
}
