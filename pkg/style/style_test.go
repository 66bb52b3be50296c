package style

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TERM", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"plain", FormatText, false},
		{"text", FormatText, false},
		{"html", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(nil))
}

func TestMessages(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	Success(&buf, "Package generated (%s)", "1.5 KB")
	assert.Contains(t, buf.String(), "->")
	assert.Contains(t, buf.String(), "Package generated (1.5 KB)")

	buf.Reset()
	Error(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	Warning(&buf, "could not remove %s", "files.tar")
	assert.Contains(t, buf.String(), "could not remove files.tar")
}
