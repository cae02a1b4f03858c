//go:build !integration

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0ns"},
		{name: "nanoseconds", duration: 500 * time.Nanosecond, expected: "500ns"},
		{name: "microseconds", duration: 850 * time.Microsecond, expected: "850µs"},
		{name: "milliseconds", duration: 12 * time.Millisecond, expected: "12ms"},
		{name: "seconds", duration: 1500 * time.Millisecond, expected: "1.5s"},
		{name: "minutes truncated", duration: 2*time.Minute + 3*time.Second + 400*time.Millisecond, expected: "2m3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration), "FormatDuration(%v)", tt.duration)
		})
	}
}
