package util

import (
	"testing"

	"mtoohey.com/texui/internal/testutil/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, -3, 5))
	assert.Equal(t, 3, Clamp(0, 3, 5))
	assert.Equal(t, 5, Clamp(0, 9, 5))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(4, 1, 3))
	assert.Equal(t, 4, Max(4, 1, 3))
	assert.Zero(t, Min[int]())
	assert.Zero(t, Max[int]())
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "olleh", Reverse("hello"))
	assert.Equal(t, "b█a", Reverse("a█b"))
	assert.Zero(t, Reverse(""))
}
