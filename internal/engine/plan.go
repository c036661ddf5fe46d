package engine

import (
	"fmt"
	"os"

	"github.com/bianoble/autobackup/internal/ignore"
)

// Decision is the per-file outcome computed by the planner.
type Decision string

const (
	// DecisionMove relocates the source file to the destination.
	DecisionMove Decision = "move"
	// DecisionSkip leaves the source file untouched because the
	// destination already has a file at that path.
	DecisionSkip Decision = "skip"
	// DecisionDeleteSource removes an ignored file from the source tree
	// without writing anything to the destination.
	DecisionDeleteSource Decision = "delete_source"
)

// Plan classifies one file. rel is the source-root-relative path that keys
// the ignore set; dstPath is the absolute path a move would write to.
//
// The ignore check runs first: an ignored file is deleted from the source
// even when a same-named file already sits at the destination. Presence at
// the destination alone blocks a move, regardless of content, size, or
// timestamps — this is what keeps the engine from ever overwriting.
func Plan(rel string, ig *ignore.Set, dstPath string) (Decision, error) {
	if ig.Ignored(rel) {
		return DecisionDeleteSource, nil
	}

	_, err := os.Lstat(dstPath)
	switch {
	case err == nil:
		return DecisionSkip, nil
	case os.IsNotExist(err):
		return DecisionMove, nil
	default:
		// Cannot tell whether the destination is occupied; moving would
		// risk an overwrite, so refuse to decide.
		return "", fmt.Errorf("checking destination %s: %w", dstPath, err)
	}
}
