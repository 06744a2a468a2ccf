package caesar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{
			name:  "classic rot3",
			text:  "attack at dawn",
			shift: 3,
			want:  "dwwdfn dw gdzq",
		},
		{
			name:  "identity shift",
			text:  "hello",
			shift: 0,
			want:  "hello",
		},
		{
			name:  "wraps past z",
			text:  "xyz",
			shift: 3,
			want:  "abc",
		},
		{
			name:  "negative shift",
			text:  "abc",
			shift: -3,
			want:  "xyz",
		},
		{
			name:  "shift far outside range",
			text:  "abc",
			shift: 26*4 + 1,
			want:  "bcd",
		},
		{
			name:  "large negative shift",
			text:  "abc",
			shift: -53,
			want:  "zab",
		},
		{
			name:  "uppercase input is lowercased",
			text:  "Hello World",
			shift: 1,
			want:  "ifmmp xpsme",
		},
		{
			name:  "non-alphabetic runes pass through",
			text:  "a1 b!",
			shift: 3,
			want:  "d1 e!",
		},
		{
			name:  "empty text",
			text:  "",
			shift: 13,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encrypt(tt.text, tt.shift))
		})
	}
}

func TestDecryptInvertsEncrypt(t *testing.T) {
	plaintext := "The quick brown fox; jumps over 13 lazy dogs!"
	lowered := strings.ToLower(plaintext)

	// Every shift, including negatives and values past 26.
	for shift := -60; shift <= 60; shift++ {
		got := Decrypt(Encrypt(plaintext, shift), shift)
		if got != lowered {
			t.Fatalf("round trip failed for shift %d: got %q, want %q", shift, got, lowered)
		}
	}
}

func TestShiftPeriodicity(t *testing.T) {
	text := "meet me at the usual place"
	for shift := 0; shift < 26; shift++ {
		assert.Equal(t, Encrypt(text, shift), Encrypt(text, shift+26), "shift %d", shift)
		assert.Equal(t, Encrypt(text, shift), Encrypt(text, shift-26), "shift %d", shift)
	}
}

func TestNonAlphabeticInvariant(t *testing.T) {
	text := "salve, münchen 123 \t\n"
	enc := Encrypt(text, 7)

	encRunes := []rune(enc)
	for i, r := range []rune(text) {
		if Index(r) < 0 {
			assert.Equal(t, r, encRunes[i], "rune %d should be untouched", i)
		}
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index('a'))
	assert.Equal(t, 0, Index('A'))
	assert.Equal(t, 25, Index('z'))
	assert.Equal(t, 25, Index('Z'))
	assert.Equal(t, -1, Index('3'))
	assert.Equal(t, -1, Index(' '))
	assert.Equal(t, -1, Index('é'))
}
