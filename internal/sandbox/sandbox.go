// Package sandbox confines filesystem mutation to the configured roots.
//
// Every path the engine touches is derived from a configured root plus a
// relative path; this package verifies that derivation cannot escape the
// root and provides the mutations the engine performs: moving a file into
// place, removing one, and pruning an emptied directory.
package sandbox

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ValidatePath resolves rel against root and verifies the result stays
// inside root. Symlinks in the existing portion of the path are resolved
// before the containment check. Returns the resolved absolute path.
func ValidatePath(root, rel string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("resolving root symlinks: %w", err)
	}

	candidate := filepath.Clean(filepath.Join(realRoot, filepath.FromSlash(rel)))
	resolved, err := resolveExistingPath(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rel, err)
	}

	// Trailing separator so "root2" does not pass as inside "root".
	prefix := realRoot + string(filepath.Separator)
	if resolved != realRoot && !strings.HasPrefix(resolved, prefix) {
		return "", fmt.Errorf("path %q resolves to %q outside root %q", rel, resolved, realRoot)
	}
	return resolved, nil
}

// resolveExistingPath resolves symlinks for the longest existing prefix of
// path and re-joins the not-yet-existing suffix, so destinations that will
// be created during the move can still be validated.
func resolveExistingPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}
	resolvedDir, err := resolveExistingPath(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedDir, filepath.Base(path)), nil
}

// MoveFile relocates src to dst, creating dst's parent directories as
// needed. Same-volume moves use rename; when the rename fails because the
// two paths live on different volumes, the file is copied through a temp
// file in dst's directory and src is removed only after the copy has been
// synced to disk. dst is expected not to exist; the caller checks first.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(dst), err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	// Likely EXDEV. Copy to the destination volume, then drop the source.
	if copyErr := copyThroughTemp(src, dst); copyErr != nil {
		return fmt.Errorf("cross-volume move %s: %w", src, copyErr)
	}
	if rmErr := os.Remove(src); rmErr != nil {
		return fmt.Errorf("removing source after copy %s: %w", src, rmErr)
	}
	return nil
}

func copyThroughTemp(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".autobackup-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return err
	}
	success = true
	return nil
}

// RemoveFile deletes a single file.
func RemoveFile(path string) error {
	return os.Remove(path)
}

// RemoveDirIfEmpty removes path when it is an empty directory. Returns true
// when the directory was removed; a non-empty directory is left in place
// without error.
func RemoveDirIfEmpty(path string) (bool, error) {
	err := os.Remove(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST) {
		return false, nil
	}
	return false, err
}
