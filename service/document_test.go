package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexityScore(t *testing.T) {
	tests := []struct {
		name                       string
		simplifiedLen, originalLen int
		want                       float64
	}{
		{"halved text scores 50", 500, 1000, 50},
		{"no reduction scores 0", 1000, 1000, 0},
		{"longer simplification clamps to 0", 1500, 1000, 0},
		{"empty original scores 0", 100, 0, 0},
		{"quarter length scores 75", 250, 1000, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComplexityScore(tt.simplifiedLen, tt.originalLen), 0.001)
		})
	}
}
