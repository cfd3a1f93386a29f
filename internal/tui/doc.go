// Package tui implements the interactive markup preview: a split-pane
// bubbletea model with a markup editor on top and the live rendered
// output below.
package tui
