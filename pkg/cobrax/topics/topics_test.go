package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"help/destination.md":   {Data: []byte("# Destination\n\nWhere the package goes.")},
		"help/option-quiet.txt": {Data: []byte("Suppress output")},
		"help/notes.json":       {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	tm := New(topicFS(), Options{})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"destination", "option-quiet"}, tm.ListTopics())

	topic, ok := tm.GetTopic("destination")
	require.True(t, ok)
	assert.Equal(t, "help/destination.md", topic.FilePath)

	topic, ok = tm.GetTopic("--quiet")
	require.True(t, ok)
	assert.Equal(t, "Suppress output", topic.Content)

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok)
}

func TestScanCustomExtensions(t *testing.T) {
	tm := New(topicFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestScanNilFS(t *testing.T) {
	tm := New(nil, Options{})
	require.NoError(t, tm.Scan())
	assert.Empty(t, tm.ListTopics())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "wspackager", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "plan", Short: "Show the plan", Run: func(*cobra.Command, []string) {}})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestHelpCommand(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, topicFS(), Options{})
	require.NoError(t, err)

	out := execute(t, root, "help", "topics")
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  destination")
	assert.Contains(t, out, "  --quiet")
	assert.Contains(t, out, "wspackager help <topic>")

	out = execute(t, root, "help", "destination")
	assert.True(t, strings.HasPrefix(out, "# Destination"))

	out = execute(t, root, "help", "plan")
	assert.Contains(t, out, "Show the plan")
}

func TestGlamourRenderer(t *testing.T) {
	r := NewPlainGlamourRenderer()

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
}
