// Command quill is the full-featured CLI for the quill markup
// language: rendering, stripping, escaping, a live preview, and
// configuration management.
package main

import (
	"os"

	"github.com/AbdelazizMoustafa10m/quill/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
