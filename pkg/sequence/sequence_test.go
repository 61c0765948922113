package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPrefixed(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		prefix string
		width  int
		want   string
	}{
		{
			name:   "empty namespace starts at 1",
			ids:    nil,
			prefix: "A",
			width:  3,
			want:   "A001",
		},
		{
			name:   "takes numeric max not last inserted",
			ids:    []string{"P001", "P003", "P002"},
			prefix: "P",
			width:  3,
			want:   "P004",
		},
		{
			name: "numeric max beats lexicographic order",
			// a string sort descending would pick P002 here and emit P003
			ids:    []string{"P001", "P010", "P002"},
			prefix: "P",
			width:  3,
			want:   "P011",
		},
		{
			name:   "ignores ids without numeric suffix",
			ids:    []string{"LEGACY", "I00007", "draft"},
			prefix: "I",
			width:  5,
			want:   "I00008",
		},
		{
			name:   "widens past padding without truncation",
			ids:    []string{"A999"},
			prefix: "A",
			width:  3,
			want:   "A1000",
		},
		{
			name:   "mixed prefixes share one number line",
			ids:    []string{"P001", "S005"},
			prefix: "S",
			width:  3,
			want:   "S006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPrefixed(tt.ids, tt.prefix, tt.width))
		})
	}
}

func TestNextNumeric(t *testing.T) {
	assert.Equal(t, 1, NextNumeric(0))
	assert.Equal(t, 1, NextNumeric(-3))
	assert.Equal(t, 8, NextNumeric(7))
}
