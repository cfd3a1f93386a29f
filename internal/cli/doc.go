// Package cli wires the quill command-line interface: the root command,
// persistent flags and configuration resolution, and the render, strip,
// escape, colors, preview, init, version and completion subcommands.
package cli
