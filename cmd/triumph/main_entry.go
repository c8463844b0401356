//go:build !testcoverage

package main

import "os"

func main() {
	if err := run(os.Args[1:], DefaultStreams()); err != nil {
		fatal(os.Stderr, "%v", err)
	}
}
