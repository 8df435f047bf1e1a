package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueFunc(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a%10 == b%10 }

	assert.Equal(t, []int{1, 2, 13}, UniqueFunc([]int{1, 2, 11, 13, 21, 3}, eq))
	assert.Empty(t, UniqueFunc([]int(nil), eq))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]string{}))
}
