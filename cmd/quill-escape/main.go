// Command quill-escape writes its single argument to standard output
// with markup metacharacters escaped (`\` as `\\`, `[` as `\[`).
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
	fmt.Print(quill.Escape(args[1]))
	return 0
}
