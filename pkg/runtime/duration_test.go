package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWaitDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"1m", time.Minute},
		{"2h", 2 * time.Hour},
		{"3d", 72 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"0m", 0},
		// Malformed forms resolve to zero: an immediate resume, not a failure.
		{"", 0},
		{"30", 0},
		{"m", 0},
		{"30s", 0},
		{"1.5h", 0},
		{"-1h", 0},
		{"1h30m", 0},
		{"soon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWaitDuration(tt.input))
		})
	}
}
