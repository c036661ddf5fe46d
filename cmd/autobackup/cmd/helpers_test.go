package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()

	abs, err := validateRoot("rootSrc", dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	_, err = validateRoot("rootSrc", filepath.Join(dir, "missing"))
	assert.Error(t, err)

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = validateRoot("rootDst", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestDefaultLogPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/backup", "src", "autobackup.log"),
		defaultLogPath(filepath.Join("/backup", "src")))
}

func TestLogExclusionInsideRoot(t *testing.T) {
	root := filepath.Join("/data", "src")
	excl := logExclusion(root, filepath.Join(root, "autobackup.log"))
	require.NotNil(t, excl)

	assert.True(t, excl("autobackup.log"))
	assert.True(t, excl("autobackup-2023-02-03T10-00-00.000.log"))
	assert.False(t, excl("autobackup.log.txt"))
	assert.False(t, excl("photos/autobackup.log"))
	assert.False(t, excl("report.log"))
}

func TestLogExclusionOutsideRoot(t *testing.T) {
	excl := logExclusion(filepath.Join("/data", "src"), filepath.Join("/var", "log", "autobackup.log"))
	assert.Nil(t, excl)
}
