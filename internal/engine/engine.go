// Package engine implements the file-relocation core: walking the source
// tree, classifying each file, and applying the resulting decision.
//
// The engine is stateless between runs. Every decision is re-derived from
// the current filesystem state, so re-running against unchanged trees is a
// no-op. It is not safe to run two engines concurrently against the same
// root pair; single-instance scheduling is the operator's responsibility.
package engine

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/bianoble/autobackup/internal/config"
	"github.com/bianoble/autobackup/internal/ignore"
	"github.com/bianoble/autobackup/internal/sandbox"
	"github.com/bianoble/autobackup/internal/walk"
	"github.com/bianoble/autobackup/pkg/autobackup"
)

// Engine relocates files from RootSrc into RootDst.
type Engine struct {
	RootSrc string
	RootDst string

	// Ignore holds the relative paths deleted from the source instead of
	// moved. Keyed on RootSrc-relative paths.
	Ignore *ignore.Set

	// Exclude reports RootSrc-relative paths the engine must leave alone
	// entirely, such as its own log file and that file's rotated backups.
	// Nil excludes nothing.
	Exclude func(rel string) bool

	Log zerolog.Logger
}

// RunOptions configures a single run.
type RunOptions struct {
	// RunID tags every log event of this run.
	RunID string
	// DryRun reports decisions without mutating either tree.
	DryRun bool
}

// Run processes every folder pair sequentially and returns the aggregated
// counts. Per-file failures are classified, logged, and counted; they never
// abort the run. Only a cancelled context or a folder root that cannot be
// walked at all surfaces as the returned error.
func (e *Engine) Run(ctx context.Context, folders []config.BackupFolder, opts RunOptions) (*autobackup.RunResult, error) {
	result := &autobackup.RunResult{RunID: opts.RunID}
	logger := e.Log.With().Str("run_id", opts.RunID).Logger()

	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := e.runFolder(ctx, folder, opts, logger, result); err != nil {
			return result, err
		}
	}

	logger.Info().
		Int("moved", result.Moved).
		Int("skipped", result.Skipped).
		Int("deleted", result.Deleted).
		Int("failed", result.Failed()).
		Bool("dry_run", opts.DryRun).
		Msg("run complete")
	return result, nil
}

func (e *Engine) runFolder(ctx context.Context, folder config.BackupFolder, opts RunOptions, logger zerolog.Logger, result *autobackup.RunResult) error {
	srcDir, err := sandbox.ValidatePath(e.RootSrc, folder.Source)
	if err != nil {
		e.fail(logger, result, folder.Source, err)
		return nil
	}
	dstDir, err := sandbox.ValidatePath(e.RootDst, folder.Destination)
	if err != nil {
		e.fail(logger, result, folder.Destination, err)
		return nil
	}

	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		logger.Warn().Str("folder", folder.Source).Msg("backup folder missing, skipping")
		return nil
	}

	logger.Info().
		Str("source", srcDir).
		Str("destination", dstDir).
		Msg("processing folder")

	walkErr := walk.Files(srcDir, func(rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.processFile(folder, rel, srcDir, dstDir, opts, logger, result)
		return nil
	}, func(rel string, err error) {
		e.fail(logger, result, srcRel(folder, rel), err)
	})
	if walkErr != nil {
		if ctx.Err() != nil {
			return walkErr
		}
		e.fail(logger, result, folder.Source, walkErr)
		return nil
	}

	if !opts.DryRun {
		e.pruneEmptyDirs(srcDir, logger)
	}
	return nil
}

// processFile runs plan and execute for one walked file. All failures are
// downgraded to counted, classified log events.
func (e *Engine) processFile(folder config.BackupFolder, rel, srcDir, dstDir string, opts RunOptions, logger zerolog.Logger, result *autobackup.RunResult) {
	key := srcRel(folder, rel)
	if e.Exclude != nil && e.Exclude(key) {
		logger.Debug().Str("path", key).Msg("excluded from processing")
		return
	}

	srcPath := filepath.Join(srcDir, filepath.FromSlash(rel))
	dstPath := filepath.Join(dstDir, filepath.FromSlash(rel))

	decision, err := Plan(key, e.Ignore, dstPath)
	if err != nil {
		e.fail(logger, result, key, err)
		return
	}

	logger.Debug().
		Str("path", key).
		Str("decision", string(decision)).
		Bool("dry_run", opts.DryRun).
		Msg("planned")

	if !opts.DryRun {
		if err := Execute(decision, srcPath, dstPath); err != nil {
			e.fail(logger, result, key, err)
			return
		}
	}

	switch decision {
	case DecisionMove:
		result.Moved++
	case DecisionSkip:
		result.Skipped++
	case DecisionDeleteSource:
		result.Deleted++
	}
}

func (e *Engine) fail(logger zerolog.Logger, result *autobackup.RunResult, rel string, err error) {
	kind := classify(err)
	logger.Error().
		Str("path", rel).
		Str("kind", string(kind)).
		Err(err).
		Msg("file failed")
	result.Failures = append(result.Failures, autobackup.FileFailure{
		Path: rel,
		Kind: kind,
		Err:  err,
	})
}

// pruneEmptyDirs removes subdirectories of dir that the run emptied,
// deepest first. dir itself is kept. Best effort: a directory still holding
// a skipped or failed file simply stays.
func (e *Engine) pruneEmptyDirs(dir string, logger zerolog.Logger) {
	var dirs []string
	_ = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && p != dir {
			dirs = append(dirs, p)
		}
		return nil
	})

	// Descending order puts children before their parents.
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, d := range dirs {
		removed, err := sandbox.RemoveDirIfEmpty(d)
		if err != nil {
			logger.Debug().Str("path", d).Err(err).Msg("could not prune directory")
			continue
		}
		if removed {
			logger.Debug().Str("path", d).Msg("pruned empty directory")
		}
	}
}

// srcRel joins a folder pair's source with a walked relative path, yielding
// the RootSrc-relative key used for ignore and exclude matching.
func srcRel(folder config.BackupFolder, rel string) string {
	if folder.Source == "." || folder.Source == "" {
		return rel
	}
	return path.Join(filepath.ToSlash(folder.Source), rel)
}

func classify(err error) autobackup.FailureKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return autobackup.FailureTransient
	case errors.Is(err, fs.ErrPermission):
		return autobackup.FailurePermission
	default:
		return autobackup.FailureIO
	}
}
