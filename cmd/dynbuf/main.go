// Command dynbuf runs the growable-buffer command session.
//
// Usage:
//
//	dynbuf [flags] <command> [args]
//
// Commands:
//
//	run      - read seed values and append/remove commands, re-running the tasks
//	limits   - print the effective capacity policy and its growth schedule
//
// Examples:
//
//	echo "4 1 -2 3 -4 1 5 2 0" | dynbuf run
//	dynbuf run -i commands.txt --config dynbuf.yaml
//	dynbuf limits --pushes 25
//	dynbuf limits --config dynbuf.yaml --write effective.yaml
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-dynbuf/cmd/dynbuf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
