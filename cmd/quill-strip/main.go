// Command quill-strip removes markup from its single argument and
// writes the plain text to standard output.
//
// It applies the same grammar as quill-render: on a syntax error it
// writes `ERROR: <message>` to standard output and exits with status 1.
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
	out, err := quill.Strip(args[1])
	if err != nil {
		fmt.Printf("ERROR: %s", err)
		return 1
	}
	fmt.Print(out)
	return 0
}
