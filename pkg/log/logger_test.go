package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetColor(false)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[test] [WARNING]")
}

func TestSetLevelDebug(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetColor(false)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	SetLevel(Debug)
	New("renderer").Debug("scanlines remaining: 3")

	assert.Contains(t, buf.String(), "scanlines remaining: 3")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", Debug},
		{"INFO", Info},
		{"", Notice},
		{"warn", Warning},
		{" error ", Error},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}
