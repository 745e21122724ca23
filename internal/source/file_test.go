package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.txt")
	require.NoError(t, os.WriteFile(path, []byte("# volcano stations\nRED EHZ AV --\n\n  AKS BHZ AV 00  \n"), 0o644))

	src, err := New(FileConfigString("Disk", path))
	require.NoError(t, err)
	assert.Equal(t, path, src.(*File).Path())

	channels, err := Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"RED EHZ AV --", "AKS BHZ AV 00"}, channels)
}

func TestFileSourceMissing(t *testing.T) {
	src, err := New(FileConfigString("Disk", filepath.Join(t.TempDir(), "absent.txt")))
	require.NoError(t, err)

	_, err = Fetch(context.Background(), src)
	assert.ErrorIs(t, err, ErrSourceUnreachable)
}

func TestFileSourceDirectory(t *testing.T) {
	src, err := New(FileConfigString("Dir", t.TempDir()))
	require.NoError(t, err)

	_, err = Fetch(context.Background(), src)
	assert.ErrorContains(t, err, "is a directory")
}
