package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePathInsideRoot(t *testing.T) {
	root := t.TempDir()

	resolved, err := ValidatePath(root, "a/b.txt")
	require.NoError(t, err)
	// TempDir may itself contain symlinks (macOS /var), so compare against
	// the resolved root.
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "a", "b.txt"), resolved)
}

func TestValidatePathRejectsEscape(t *testing.T) {
	root := t.TempDir()

	_, err := ValidatePath(root, "../outside.txt")
	assert.Error(t, err)

	_, err = ValidatePath(root, "a/../../outside.txt")
	assert.Error(t, err)
}

func TestValidatePathRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	_, err := ValidatePath(root, "link/escape.txt")
	assert.Error(t, err)
}

func TestValidatePathRootItself(t *testing.T) {
	root := t.TempDir()

	resolved, err := ValidatePath(root, ".")
	require.NoError(t, err)
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, realRoot, resolved)
}

func TestMoveFileCreatesParents(t *testing.T) {
	srcRoot := t.TempDir()
	dstRoot := t.TempDir()
	src := filepath.Join(srcRoot, "f.txt")
	dst := filepath.Join(dstRoot, "deep", "nested", "f.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, MoveFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveFileMissingSource(t *testing.T) {
	dstRoot := t.TempDir()
	err := MoveFile(filepath.Join(t.TempDir(), "gone.txt"), filepath.Join(dstRoot, "g.txt"))
	assert.Error(t, err)
}

func TestRemoveDirIfEmpty(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	full := filepath.Join(root, "full")
	require.NoError(t, os.Mkdir(empty, 0o755))
	require.NoError(t, os.Mkdir(full, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "f.txt"), []byte("x"), 0o644))

	removed, err := RemoveDirIfEmpty(empty)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveDirIfEmpty(full)
	require.NoError(t, err)
	assert.False(t, removed)
	_, err = os.Stat(filepath.Join(full, "f.txt"))
	assert.NoError(t, err)

	removed, err = RemoveDirIfEmpty(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.False(t, removed)
}
