package testutil

import (
	"archive/tar"
	"bufio"
	"bytes"
	"io"
	"sort"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Entry is one archive member as seen by tests
type Entry struct {
	Name    string
	Mode    int64
	IsDir   bool
	Content []byte
}

// IsGzipFile reports whether the file starts with the gzip magic bytes
func IsGzipFile(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// ReadArchive reads every entry of a .tar or .tar.gz file
func ReadArchive(t *testing.T, fs afero.Fs, path string) []Entry {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return ReadArchiveBytes(t, data)
}

// ReadArchiveBytes reads every entry of a tar stream, gunzipping when needed
func ReadArchiveBytes(t *testing.T, data []byte) []Entry {
	t.Helper()

	var r io.Reader = bufio.NewReader(bytes.NewReader(data))
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := pgzip.NewReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer gz.Close()
		r = gz
	}

	var entries []Entry
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		content, err := io.ReadAll(tr)
		require.NoError(t, err)

		entries = append(entries, Entry{
			Name:    hdr.Name,
			Mode:    hdr.Mode,
			IsDir:   hdr.Typeflag == tar.TypeDir,
			Content: content,
		})
	}

	return entries
}

// ListArchive returns the sorted entry names of an archive file
func ListArchive(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	return Names(ReadArchive(t, fs, path))
}

// Names returns the sorted names of the entries
func Names(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// FindEntry returns the entry with the given name
func FindEntry(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()

	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	require.Failf(t, "entry not found", "no archive entry named %q in %v", name, Names(entries))
	return Entry{}
}
