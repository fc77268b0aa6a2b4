// Package diff computes line-level diffs of the config document, used to
// preview what a provider switch will write.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one row of a rendered diff.
type Line struct {
	Type    string
	Text    string
	OldLine int
	NewLine int

	// Count is the number of elided lines, set on gap lines only.
	Count int
}

const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
	LineGap     = "gap"
)

// Lines computes a line-level diff between two documents. Equal runs become
// context lines carrying both old and new line numbers.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		chunk := strings.Split(d.Text, "\n")
		if len(chunk) > 0 && chunk[len(chunk)-1] == "" {
			chunk = chunk[:len(chunk)-1]
		}
		for _, text := range chunk {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{Type: LineContext, Text: text, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{Type: LineRemoved, Text: text, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{Type: LineAdded, Text: text, NewLine: newLine})
				newLine++
			}
		}
	}
	return lines
}

// Changed reports whether the diff contains any added or removed line.
func Changed(lines []Line) bool {
	for _, line := range lines {
		if line.Type != LineContext {
			return true
		}
	}
	return false
}

// Collapse shortens long context runs, keeping `keep` lines adjacent to each
// change and replacing the rest of the run with a single gap line. Diffs with
// no changes come back untouched.
func Collapse(lines []Line, keep int) []Line {
	if keep <= 0 || !Changed(lines) {
		return lines
	}

	var out []Line
	var run []Line
	seenChange := false

	for _, line := range lines {
		if line.Type == LineContext {
			run = append(run, line)
			continue
		}
		out = append(out, collapseRun(run, keep, !seenChange, false)...)
		run = nil
		out = append(out, line)
		seenChange = true
	}
	return append(out, collapseRun(run, keep, !seenChange, true)...)
}

// collapseRun shortens one run of context lines. Leading runs keep only
// their tail, trailing runs only their head, interior runs keep both ends.
// Runs too short to save at least two lines stay intact.
func collapseRun(run []Line, keep int, atStart, atEnd bool) []Line {
	switch {
	case atStart && atEnd:
		return run
	case atStart:
		if len(run) <= keep+1 {
			return run
		}
		elided := len(run) - keep
		return append([]Line{gapLine(elided)}, run[elided:]...)
	case atEnd:
		if len(run) <= keep+1 {
			return run
		}
		out := append([]Line{}, run[:keep]...)
		return append(out, gapLine(len(run)-keep))
	default:
		if len(run) <= 2*keep+1 {
			return run
		}
		elided := len(run) - 2*keep
		out := append([]Line{}, run[:keep]...)
		out = append(out, gapLine(elided))
		return append(out, run[len(run)-keep:]...)
	}
}

func gapLine(count int) Line {
	return Line{Type: LineGap, Count: count}
}
