package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "bytes", size: 512, expected: "512 B"},
		{name: "kibibytes", size: 2048, expected: "2.0 KiB"},
		{name: "mebibytes", size: 5 * 1024 * 1024, expected: "5.0 MiB"},
		{name: "gibibytes", size: 3 * 1024 * 1024 * 1024, expected: "3.0 GiB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatBytes(tt.size))
		})
	}
}

func TestYesNo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
