// Package patch loads a directory of patch documents and applies their
// literal find/replace edits against target files in a checked-out tree.
package patch

import (
	"regexp"
	"strings"
)

// BranchPlaceholder is the token substituted at write time with the name of
// the branch checked out when the patch is applied.
const BranchPlaceholder = "__BRANCH_NAME__"

// Marker lines are matched as whole lines, tolerating surrounding whitespace.
var (
	findMarker    = regexp.MustCompile(`^\s*// find:\s*$`)
	replaceMarker = regexp.MustCompile(`^\s*// replace with:\s*$`)
)

// EditBlock is one literal find/replace pair within a patch document.
type EditBlock struct {
	Find    string
	Replace string
}

// Document is one patch file, identified by its path relative to the patch
// root. The same relative path locates its target in the repository tree.
type Document struct {
	Path    string
	Content string
}

// Blocks extracts the document's ordered edit blocks.
func (d Document) Blocks() []EditBlock {
	return ParseBlocks(d.Content)
}

// SubstituteBranch replaces every occurrence of the branch placeholder in s
// with the given branch name.
func SubstituteBranch(s, branch string) string {
	return strings.ReplaceAll(s, BranchPlaceholder, branch)
}

// ParseBlocks parses patch document text into ordered edit blocks.
//
// Lines before the first find marker are ignored. A find marker flushes any
// in-progress pair before starting a new one, and a trailing in-progress
// pair is flushed at end of input. A document with no markers yields no
// blocks and is treated by the engine as a full-file replacement.
func ParseBlocks(content string) []EditBlock {
	const (
		outside = iota
		collectingFind
		collectingReplace
	)

	var (
		blocks  []EditBlock
		find    []string
		replace []string
		state   = outside
	)

	flush := func() {
		if state == outside {
			return
		}
		blocks = append(blocks, EditBlock{
			Find:    strings.Join(find, "\n"),
			Replace: strings.Join(replace, "\n"),
		})
		find = nil
		replace = nil
	}

	// A trailing newline terminates the last line; it is not an extra
	// empty payload line.
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		switch {
		case findMarker.MatchString(line):
			flush()
			state = collectingFind
		case replaceMarker.MatchString(line) && state == collectingFind:
			state = collectingReplace
		case state == collectingFind:
			find = append(find, line)
		case state == collectingReplace:
			replace = append(replace, line)
		}
	}
	flush()

	return blocks
}
