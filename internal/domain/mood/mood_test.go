package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   Emotion
		wantOK bool
	}{
		{input: "happy", want: Happy, wantOK: true},
		{input: "HAPPY", want: Happy, wantOK: true},
		{input: " calm ", want: Calm, wantOK: true},
		{input: "melancholic", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestEmotion_Valid(t *testing.T) {
	for _, e := range All() {
		assert.True(t, e.Valid(), "emotion %s", e)
	}
	assert.False(t, Emotion("bogus").Valid())
	assert.False(t, Emotion("").Valid())
}
