package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTrailingPeriod(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		ok       bool
	}{
		{"30d", 30 * 24 * time.Hour, true},
		{"365d", 365 * 24 * time.Hour, true},
		{"7days", 7 * 24 * time.Hour, true},
		{" 30D ", 30 * 24 * time.Hour, true},
		{"168h", 168 * time.Hour, true},
		{"0d", 0, false},
		{"-5d", 0, false},
		{"d", 0, false},
		{"monthly", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, ok := ParseTrailingPeriod(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}
