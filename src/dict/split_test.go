package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		ok       bool
	}{
		{"hello", []string{"hello"}, true},
		{"sunflower", []string{"sunflower"}, true},
		{"rainbowbutterfly", []string{"rainbow", "butterfly"}, true},
		{"keyboardcat", []string{"keyboard", "cat"}, true},
		{"thecatsatonthedoor", nil, false},
		{"thecatisonthedoor", []string{"the", "cat", "is", "on", "the", "door"}, true},
		{"helloz", nil, false},
		{"", nil, false},
		{"Hello", nil, false},
	}

	for _, tt := range tests {
		words, ok := Split(Words, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, words, tt.input)
	}
}

func TestSplit_TooLong(t *testing.T) {
	_, ok := Split(Words, strings.Repeat("a", MaxSplitLen+1))
	assert.False(t, ok)

	words, ok := Split(Words, strings.Repeat("a", MaxSplitLen))
	assert.True(t, ok)
	assert.Len(t, words, MaxSplitLen)
}
