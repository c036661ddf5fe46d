// Package autobackup exposes the result types produced by a backup run.
//
// autobackup relocates files from a cloud-synced source tree into a
// destination tree without ever overwriting an existing destination file.
// The engine itself lives under internal/; this package carries the types a
// caller needs to inspect what a run did.
package autobackup

// FailureKind classifies a per-file failure.
type FailureKind string

const (
	// FailureTransient covers files that vanished or changed state between
	// enumeration and processing. They are re-evaluated on the next run.
	FailureTransient FailureKind = "transient"
	// FailurePermission covers unreadable sources and unwritable
	// destinations.
	FailurePermission FailureKind = "permission"
	// FailureIO covers every other filesystem error.
	FailureIO FailureKind = "io"
)

// FileFailure records a single file the run could not process.
type FileFailure struct {
	Path string
	Kind FailureKind
	Err  error
}

func (f FileFailure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

func (f FileFailure) Unwrap() error {
	return f.Err
}

// RunResult holds the outcome of one backup run.
type RunResult struct {
	RunID    string
	Moved    int
	Skipped  int
	Deleted  int
	Failures []FileFailure
}

// Failed reports how many files could not be processed.
func (r *RunResult) Failed() int {
	return len(r.Failures)
}

// Total reports how many files the run considered.
func (r *RunResult) Total() int {
	return r.Moved + r.Skipped + r.Deleted + len(r.Failures)
}
