package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a loud bang on the left", NormalizeText("A  LOUD\tbang\n on the Left"))
}

func TestExtractPositions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Position
	}{
		{
			name:     "two keywords in order",
			text:     "a loud explosion on the right then crash on the left",
			expected: []Position{PositionRight, PositionLeft},
		},
		{
			name:     "duplicates are kept",
			text:     "left, then left again, then top",
			expected: []Position{PositionLeft, PositionLeft, PositionTop},
		},
		{
			name:     "case insensitive",
			text:     "FRONT and Back",
			expected: []Position{PositionFront, PositionBack},
		},
		{
			name:     "whole words only",
			text:     "the frontier was bottomless and backed by tops",
			expected: []Position{},
		},
		{
			name:     "non-ASCII letters are word characters",
			text:     "caféleft explosion, then right",
			expected: []Position{PositionRight},
		},
		{
			name:     "keyword followed by non-ASCII letter",
			text:     "leftñ and topé and bottom",
			expected: []Position{PositionBottom},
		},
		{
			name:     "digits and underscores join words",
			text:     "left2 _right 3top front",
			expected: []Position{PositionFront},
		},
		{
			name:     "non-ASCII punctuation separates words",
			text:     "«left» — right",
			expected: []Position{PositionLeft, PositionRight},
		},
		{
			name:     "no keywords",
			text:     "a quiet hum",
			expected: []Position{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPositions(tt.text))
		})
	}
}

func TestDeterminePositions(t *testing.T) {
	t.Run("first two matches win", func(t *testing.T) {
		first, second := DeterminePositions(ExtractPositions(
			"a loud explosion on the right then crash on the left, then bottom and top"))

		if assert.NotNil(t, first) && assert.NotNil(t, second) {
			assert.Equal(t, "right", *first)
			assert.Equal(t, "left", *second)
		}
	})

	t.Run("keywords glued to non-ASCII letters do not count", func(t *testing.T) {
		first, second := DeterminePositions(ExtractPositions("caféleft explosion, then right"))
		assert.Nil(t, first)
		assert.Nil(t, second)
	})

	t.Run("single keyword yields nothing", func(t *testing.T) {
		first, second := DeterminePositions(ExtractPositions("a crash at the back"))
		assert.Nil(t, first)
		assert.Nil(t, second)
	})

	t.Run("no keyword yields nothing", func(t *testing.T) {
		first, second := DeterminePositions(nil)
		assert.Nil(t, first)
		assert.Nil(t, second)
	})
}
