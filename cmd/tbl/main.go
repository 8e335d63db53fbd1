package main

import (
	"fmt"
	"runtime"
)

// Build information, injected with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString renders the --version output.
func versionString() string {
	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("tbl %s (commit %s, built %s, %s)", version, short, date, runtime.Version())
}
