package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/autobackup/internal/ignore"
)

func TestPlanMoveWhenDestinationFree(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b.txt")

	d, err := Plan("a/b.txt", ignore.NewSet(nil), dst)
	require.NoError(t, err)
	assert.Equal(t, DecisionMove, d)
}

func TestPlanSkipWhenDestinationOccupied(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "c.txt")
	require.NoError(t, os.WriteFile(dst, []byte("existing"), 0o644))

	d, err := Plan("c.txt", ignore.NewSet(nil), dst)
	require.NoError(t, err)
	assert.Equal(t, DecisionSkip, d)
}

func TestPlanSkipWhenDestinationIsDirectory(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "c.txt")
	require.NoError(t, os.Mkdir(dst, 0o755))

	// Any entry at the destination path blocks the move, files and
	// directories alike.
	d, err := Plan("c.txt", ignore.NewSet(nil), dst)
	require.NoError(t, err)
	assert.Equal(t, DecisionSkip, d)
}

func TestPlanDeleteSourceForIgnored(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "tmp", "cache.bin")

	d, err := Plan("tmp/cache.bin", ignore.NewSet([]string{"tmp/cache.bin"}), dst)
	require.NoError(t, err)
	assert.Equal(t, DecisionDeleteSource, d)
}

func TestPlanIgnoreTakesPrecedenceOverOccupied(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "cache.bin")
	require.NoError(t, os.WriteFile(dst, []byte("existing"), 0o644))

	d, err := Plan("cache.bin", ignore.NewSet([]string{"cache.bin"}), dst)
	require.NoError(t, err)
	assert.Equal(t, DecisionDeleteSource, d)
}

func TestPlanUnreadableDestinationRefuses(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := Plan("locked/f.txt", ignore.NewSet(nil), filepath.Join(locked, "f.txt"))
	assert.Error(t, err)
}
