package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// validateRoot verifies a root flag points at an existing directory and
// returns its absolute form. Any failure here is fatal: the engine must not
// start a walk against an invalid root.
func validateRoot(name, value string) (string, error) {
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolving %s %q: %w", name, value, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", name, value, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s %q is not a directory", name, value)
	}
	return abs, nil
}

// defaultLogPath places the log beside the files being backed up, matching
// where operators already look.
func defaultLogPath(rootSrc string) string {
	return filepath.Join(rootSrc, "autobackup.log")
}

// logExclusion shields the active log file, and the rotated backups the
// logger writes next to it, from being relocated when the log lives inside
// the source root. Returns nil when the log is outside the root.
func logExclusion(rootSrc, logPath string) func(rel string) bool {
	rel, err := filepath.Rel(rootSrc, logPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	relSlash := filepath.ToSlash(rel)
	dir := path.Dir(relSlash)
	base := path.Base(relSlash)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return func(p string) bool {
		if p == relSlash {
			return true
		}
		if path.Dir(p) != dir {
			return false
		}
		// Rotated backups are named <stem>-<timestamp><ext>.
		b := path.Base(p)
		return strings.HasPrefix(b, stem+"-") && strings.HasSuffix(b, ext)
	}
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
