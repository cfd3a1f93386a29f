// Command quill-render renders its single markup argument to standard
// output with SGR escape sequences, unconditionally.
//
// On a syntax error it writes `ERROR: <message>` to standard output and
// exits with status 1. The output carries no trailing newline, so it
// can be embedded byte-exactly.
package main

import (
	"fmt"
	"os"

	"github.com/AbdelazizMoustafa10m/quill"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		return 1
	}
	out, err := quill.Render(args[1])
	if err != nil {
		fmt.Printf("ERROR: %s", err)
		return 1
	}
	fmt.Print(out)
	return 0
}
