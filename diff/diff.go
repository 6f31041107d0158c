// Package diff renders the effect of an expansion as a unified diff
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// Stats captures basic statistics about a unified diff
type Stats struct {
	Hunks   int
	Added   int
	Removed int
}

// GenerateDiff produces a GNU unified diff between old and new file contents.
// If the two inputs are identical, an empty diff string is returned.
func GenerateDiff(oldContent, newContent []byte, filePath string, contextLines int) (string, Stats, error) {
	if contextLines <= 0 {
		contextLines = 3
	}
	if string(oldContent) == string(newContent) {
		return "", Stats{}, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(oldContent)),
		B:        difflib.SplitLines(string(newContent)),
		FromFile: filePath + " (original)",
		ToFile:   filePath + " (expanded)",
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", Stats{}, err
	}
	stats, err := Summarize(patch)
	if err != nil {
		return "", Stats{}, err
	}
	return patch, stats, nil
}

// Summarize parses a single file unified diff
func Summarize(patch string) (Stats, error) {
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to parse diff: %w", err)
	}
	stat := fileDiff.Stat()
	return Stats{
		Hunks:   len(fileDiff.Hunks),
		Added:   int(stat.Added + stat.Changed),
		Removed: int(stat.Deleted + stat.Changed),
	}, nil
}
