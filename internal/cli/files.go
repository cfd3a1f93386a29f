package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AbdelazizMoustafa10m/quill/internal/logging"
)

// defaultJobs bounds concurrent file transforms for the --files modes.
const defaultJobs = 4

var filesLogger = logging.New("files")

// expandPatterns expands doublestar glob patterns relative to the
// working directory, preserving pattern order and per-pattern match
// order. A pattern matching nothing is logged but is not an error.
func expandPatterns(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("at least one glob pattern is required with --files")
	}
	var paths []string
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
		}
		if len(matches) == 0 {
			filesLogger.Warn("pattern matched no files", "pattern", pat)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// transformFiles reads every file matched by the patterns, applies fn
// to each concurrently, and writes the results to the command's output
// in match order. The first failure cancels the remaining work.
func transformFiles(cmd *cobra.Command, patterns []string, jobs int, fn func(string) (string, error)) error {
	paths, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if jobs < 1 {
		jobs = 1
	}
	filesLogger.Debug("transforming files", "count", len(paths), "jobs", jobs)

	results := make([]string, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			out, err := fn(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		if _, err := io.WriteString(w, r); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
