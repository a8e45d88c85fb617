package main

import (
	"flag"
	"fmt"

	"github.com/seralba/devsink/internal/devname"
)

// runNormalize canonicalizes each device name argument, printing one result
// per line. Any invalid name fails the command after all names are checked.
func runNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	quiet := fs.Bool("q", false, "print normalized names only, no raw form")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("normalize: no device names given")
	}

	var failed bool
	for _, raw := range fs.Args() {
		n, err := devname.Parse(raw)
		if err != nil {
			fmt.Printf("%s: %v\n", raw, err)
			failed = true
			continue
		}
		if *quiet {
			fmt.Println(n.Normalized)
		} else {
			fmt.Printf("%s -> %s\n", raw, n.Normalized)
		}
	}
	if failed {
		return fmt.Errorf("normalize: one or more names failed validation")
	}
	return nil
}
