package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStartsAtOneAndIncrements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	l := Open(path)
	for want := 1; want <= 5; want++ {
		n, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestNextPersistsBeforeReturning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	l := Open(path)
	n, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", string(b))
}

func TestReopenContinuesSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	l := Open(path)
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Next()
	require.NoError(t, err)

	l2 := Open(path)
	n, err := l2.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCorruptCounterResetsToOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number\n"), 0o644))
	l := Open(path)
	n, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMissingCounterResetsToOne(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "absent.txt"))
	n, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPersistFailureSurfaces(t *testing.T) {
	// point the counter at a directory so the rename fails
	dir := t.TempDir()
	l := Open(dir)
	_, err := l.Next()
	require.Error(t, err)
}
