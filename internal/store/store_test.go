package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func TestDiffIDs(t *testing.T) {
	tests := []struct {
		name     string
		existing []int64
		incoming []int64
		want     []int64
	}{
		{"all retained", []int64{1, 2}, []int64{1, 2}, nil},
		{"one dropped", []int64{1, 2, 3}, []int64{1, 3}, []int64{2}},
		{"all dropped", []int64{4, 5}, nil, []int64{4, 5}},
		{"nothing existing", nil, []int64{7}, nil},
		{"incoming superset", []int64{1}, []int64{1, 2, 3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diffIDs(tt.existing, tt.incoming))
		})
	}
}

func TestIDArgs(t *testing.T) {
	assert.Equal(t, []any{int64(1), int64(2), "org"}, idArgs([]int64{1, 2}, "org"))
	assert.Equal(t, []any{int64(9)}, idArgs([]int64{9}))
}
