package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInRange(1, 1, 38))
	assert.True(t, IsInRange(1, 38, 38))
	assert.False(t, IsInRange(1, 39, 38))
	assert.False(t, IsInRange(0.5, 0.25, 1.0))
	assert.True(t, IsInRange[uint8](0, 255, 255))
}
