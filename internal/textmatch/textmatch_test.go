package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "identical", a: "yes", b: "yes", expected: true},
		{name: "case insensitive", a: "Yes", b: "yES", expected: true},
		{name: "trailing punctuation", a: "Yes!", b: "yes", expected: true},
		{name: "period versus upper case", a: "No.", b: "NO", expected: true},
		{name: "punctuation only difference", a: "tell, me; more!!!", b: "Tell me more", expected: true},
		{name: "different words", a: "yes", b: "no", expected: false},
		{name: "whitespace is preserved", a: "tellmemore", b: "tell me more", expected: false},
		{name: "surrounding whitespace is preserved", a: "  yes ", b: "yes", expected: false},
		{name: "both empty", a: "", b: "", expected: true},
		{name: "punctuation only input", a: "?!", b: "", expected: true},
		{name: "digits survive", a: "joke 42", b: "Joke 42!", expected: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equal(tc.a, tc.b))
		})
	}
}

func TestEqualIsReflexive(t *testing.T) {
	for _, s := range []string{"banana", "Start", "¿Qué?", "  spaced out  ", "😞"} {
		assert.True(t, Equal(s, s), "Equal(%q, %q) should hold", s, s)
	}
}

func TestEqualAny(t *testing.T) {
	candidates := []string{"help", "help me", "sos"}

	assert.True(t, EqualAny("SOS!", candidates))
	assert.True(t, EqualAny("Help me.", candidates))
	assert.False(t, EqualAny("banana", candidates))
	assert.False(t, EqualAny("sos", nil))
}
