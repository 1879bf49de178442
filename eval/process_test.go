package eval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeStatement(t, dir, "a.prop", "~0\n")

	results, err := ProcessFiles(context.Background(), nil, New(nil, nil), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Result.Value)
}

func TestProcessFilesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "a.prop", "1 ^ 1\n")
	writeStatement(t, dir, "b.prop", "1 ^ 0\n")
	writeStatement(t, dir, "broken.prop", "(1 v 0\n")
	writeStatement(t, dir, "ignored.dat", "not a statement")

	results, err := ProcessFiles(context.Background(), nil, New(nil, nil), []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 3, "only statement files are picked up")

	// results are sorted by path
	assert.Contains(t, results[0].Path, "a.prop")
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Result.Value)

	assert.Contains(t, results[1].Path, "b.prop")
	require.NoError(t, results[1].Err)
	assert.False(t, results[1].Result.Value)

	assert.Contains(t, results[2].Path, "broken.prop")
	assert.Error(t, results[2].Err, "a failing file does not abort the batch")
}

func TestProcessFilesMissingPath(t *testing.T) {
	_, err := ProcessFiles(context.Background(), nil, New(nil, nil), []string{"does-not-exist"})
	require.Error(t, err)
}

func TestProcessFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.prop", "b.prop", "c.prop"} {
		writeStatement(t, dir, name, "1\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := ProcessFiles(ctx, nil, New(nil, nil), []string{dir})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
