package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Add(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Vector2
		expected Vector2
	}{
		{"zero", Vector2{}, Vector2{}, Vector2{}},
		{"positive", Vector2{1, 2}, Vector2{3, 4}, Vector2{4, 6}},
		{"opposite", Vector2{-1, 2.5}, Vector2{1, -2.5}, Vector2{0, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Add(tc.b))
		})
	}
}

func TestVector2Accumulate(t *testing.T) {
	v := Vector2{X: 10, Y: -5}
	v.Accumulate(Vector2{X: 2, Y: 5})
	assert.Equal(t, Vector2{X: 12, Y: 0}, v)

	v.Accumulate(Vector2{})
	assert.Equal(t, Vector2{X: 12, Y: 0}, v)
}

func TestVector2Scale(t *testing.T) {
	v := Vector2{X: 1.5, Y: -2}
	assert.Equal(t, Vector2{X: 3, Y: -4}, v.Scale(2))
	assert.Equal(t, Vector2{}, v.Scale(0))
	assert.Equal(t, Vector2{X: 1.5, Y: -2}, v, "Scale must not modify the receiver")
}
