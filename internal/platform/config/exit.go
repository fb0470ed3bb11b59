package config

import (
	"fmt"
	"os"
)

// Exitf prints "Error: <message>" to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
