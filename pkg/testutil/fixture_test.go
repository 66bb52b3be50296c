package testutil

import (
	"archive/tar"
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture(t *testing.T) {
	f := NewFixture(t).
		File("files/lib/a.php", "<?php").
		Dir("empty").
		Manifest("com.example.test", "1.0.0", "files.tar", "page.xml")

	assert.True(t, f.Exists("files/lib/a.php"))
	assert.True(t, f.Exists("empty"))
	assert.True(t, f.Exists("package.xml"))
	assert.False(t, f.Exists("missing"))
	assert.Empty(t, f.Root())

	manifest, err := afero.ReadFile(f.FS(), "package.xml")
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `<package name="com.example.test">`)
	assert.Contains(t, string(manifest), `<instruction type="file">page.xml</instruction>`)
}

func TestDiskFixture(t *testing.T) {
	f := NewDiskFixture(t).File("a.txt", "a")
	assert.NotEmpty(t, f.Root())
	assert.True(t, f.Exists("a.txt"))
}

func TestReadArchiveBytes(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "dir/", Typeflag: tar.TypeDir, Mode: 0777}))
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "dir/a.txt", Typeflag: tar.TypeReg, Mode: 0777, Size: 1}))
	_, err := tw.Write([]byte("a"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	entries := ReadArchiveBytes(t, buf.Bytes())
	assert.Equal(t, []string{"dir/", "dir/a.txt"}, Names(entries))
	assert.True(t, FindEntry(t, entries, "dir/").IsDir)
	assert.Equal(t, "a", string(FindEntry(t, entries, "dir/a.txt").Content))
}
