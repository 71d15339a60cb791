package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "bytes", size: 512, expected: "512 B"},
		{name: "megabytes", size: 52428800, expected: "50 MB"},
		{name: "rounds down", size: 52428800 + 1024, expected: "50 MB"},
		{name: "zero", size: 0, expected: "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytes(tt.size))
		})
	}
}
