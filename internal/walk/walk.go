// Package walk enumerates the regular files under a source root.
//
// The source tree belongs to a cloud-sync client and may mutate while the
// walk is in progress, so entries that vanish mid-walk are tolerated rather
// than fatal. A walk is single-use: each run starts a fresh one.
package walk

import (
	"os"
	"path/filepath"
)

// VisitFunc receives each regular file as a slash-separated path relative to
// the walked root.
type VisitFunc func(rel string) error

// ErrorFunc receives entries that could not be read while descending, such
// as a directory the process may not list.
type ErrorFunc func(rel string, err error)

// Files walks root depth-first and calls visit for every regular file.
// Directories and irregular entries (symlinks, sockets) are not visited.
//
// An entry that disappears between enumeration and stat is skipped silently:
// the sync client owning the tree removed it first and it is no longer ours
// to relocate. Other per-entry errors go to errFn and the walk continues.
// Only an error on the root itself, or an error returned by visit, aborts
// the walk.
func Files(root string, visit VisitFunc, errFn ErrorFunc) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			if path == filepath.Clean(root) {
				return err
			}
			if os.IsNotExist(err) {
				return nil
			}
			if errFn != nil {
				errFn(rel, err)
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		return visit(rel)
	})
}
