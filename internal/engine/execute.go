package engine

import (
	"fmt"

	"github.com/bianoble/autobackup/internal/sandbox"
)

// Execute applies a decision to one file. Side effects are confined to the
// source file and, for a move, the destination file plus any missing parent
// directories.
func Execute(d Decision, srcPath, dstPath string) error {
	switch d {
	case DecisionMove:
		return sandbox.MoveFile(srcPath, dstPath)
	case DecisionSkip:
		return nil
	case DecisionDeleteSource:
		return sandbox.RemoveFile(srcPath)
	default:
		return fmt.Errorf("unknown decision %q", d)
	}
}
