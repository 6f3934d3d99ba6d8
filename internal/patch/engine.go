package patch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects how the engine treats matched blocks.
type Mode int

const (
	// Apply mutates target content and writes it back.
	Apply Mode = iota
	// DryRun matches blocks but never mutates content or writes files.
	DryRun
	// ShowOnly behaves like DryRun; callers additionally render the full
	// find/replace text of every block for inspection.
	ShowOnly
)

// String returns the mode name for progress output.
func (m Mode) String() string {
	switch m {
	case Apply:
		return "apply"
	case DryRun:
		return "dry-run"
	case ShowOnly:
		return "show"
	default:
		return "unknown"
	}
}

// BlockOutcome is the per-block result of an application attempt.
type BlockOutcome int

const (
	// Applied means the find text matched and the replacement was made.
	Applied BlockOutcome = iota
	// FoundNotApplied means the find text matched but the mode forbade mutation.
	FoundNotApplied
	// NotFound means the find text was absent from the target content.
	NotFound
)

// BlockResult pairs an edit block with its outcome.
type BlockResult struct {
	Block   EditBlock
	Outcome BlockOutcome
}

// Result is the aggregate outcome of applying one document.
type Result struct {
	Document string
	Blocks   []BlockResult
	Found    int
	Total    int
	// Created is set when the target was absent and the document supplied
	// its full content.
	Created bool
	// Overwrote is set when a markerless document replaced an existing target.
	Overwrote bool
	// Wrote is set when the target file was actually written.
	Wrote bool
}

// Engine applies patch documents against files below a repository root.
type Engine struct {
	repoRoot string
}

// NewEngine creates an engine writing into the tree rooted at repoRoot.
func NewEngine(repoRoot string) *Engine {
	return &Engine{repoRoot: repoRoot}
}

// ApplyDocument applies one document against its target file. The branch
// name replaces the branch placeholder in any content written out.
//
// Absent blocks are reported, not errors; only target or filesystem
// failures return a non-nil error, and those are fatal to this document
// alone.
func (e *Engine) ApplyDocument(doc Document, branch string, mode Mode) (Result, error) {
	target := filepath.Join(e.repoRoot, filepath.FromSlash(doc.Path))
	result := Result{Document: doc.Path}

	data, err := os.ReadFile(target)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return result, fmt.Errorf("failed to read target %s: %w", doc.Path, err)
		}
		return e.createTarget(target, doc, branch, mode, result)
	}

	blocks := doc.Blocks()
	if len(blocks) == 0 {
		return e.overwriteTarget(target, doc, branch, mode, result)
	}

	content := string(data)
	applied := 0
	for _, block := range blocks {
		result.Total++

		// Apply mode searches the progressively mutated content, so a
		// block may depend on the edit before it. Dry modes never mutate
		// and therefore always match against the original bytes.
		if !strings.Contains(content, block.Find) {
			result.Blocks = append(result.Blocks, BlockResult{Block: block, Outcome: NotFound})
			continue
		}

		result.Found++
		if mode != Apply {
			result.Blocks = append(result.Blocks, BlockResult{Block: block, Outcome: FoundNotApplied})
			continue
		}

		content = strings.Replace(content, block.Find, block.Replace, 1)
		applied++
		result.Blocks = append(result.Blocks, BlockResult{Block: block, Outcome: Applied})
	}

	if mode == Apply && applied > 0 {
		if err := os.WriteFile(target, []byte(SubstituteBranch(content, branch)), 0o644); err != nil {
			return result, fmt.Errorf("failed to write target %s: %w", doc.Path, err)
		}
		result.Wrote = true
	}

	return result, nil
}

// createTarget handles an absent target: the document's raw content becomes
// the new file. Parent directories are created in every mode; the write
// itself only happens when applying.
func (e *Engine) createTarget(target string, doc Document, branch string, mode Mode, result Result) (Result, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return result, fmt.Errorf("failed to create directories for %s: %w", doc.Path, err)
	}

	result.Created = true
	result.Total = 1
	result.Found = 1

	if mode == Apply {
		if err := os.WriteFile(target, []byte(SubstituteBranch(doc.Content, branch)), 0o644); err != nil {
			return result, fmt.Errorf("failed to write new target %s: %w", doc.Path, err)
		}
		result.Wrote = true
	}

	return result, nil
}

// overwriteTarget handles a markerless document against an existing target:
// the whole document is the replacement content. Accounted as a single
// always-found block.
func (e *Engine) overwriteTarget(target string, doc Document, branch string, mode Mode, result Result) (Result, error) {
	result.Overwrote = true
	result.Total = 1
	result.Found = 1

	if mode == Apply {
		if err := os.WriteFile(target, []byte(SubstituteBranch(doc.Content, branch)), 0o644); err != nil {
			return result, fmt.Errorf("failed to overwrite target %s: %w", doc.Path, err)
		}
		result.Wrote = true
	}

	return result, nil
}
