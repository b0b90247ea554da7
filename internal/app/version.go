package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version. It is overridable at build time:
//
//	go build -ldflags "-X github.com/agbru/fibloop/internal/app.Version=v1.2.3"
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
// It is checked before flag parsing so --version works regardless of other
// flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibloop %s (%s)\n", Version, runtime.Version())
}
