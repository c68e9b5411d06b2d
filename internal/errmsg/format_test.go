package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSessionLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSessionLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load session: file not found",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSessionLoad,
			context:  "forest.json",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats with context",
			op:       OpSessionLoad,
			context:  "forest.json",
			err:      errors.New("no such file"),
			expected: "Failed to load session 'forest.json': no such file",
		},
		{
			name:     "empty context falls back to plain format",
			op:       OpSessionLoad,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to load session: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q",
					tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
