// Package caesar implements the classical Caesar (shift) cipher over the
// 26-letter Latin alphabet.
//
// Encryption rotates every ASCII letter by a fixed offset modulo 26 and
// lowercases it; everything else (digits, punctuation, whitespace,
// non-ASCII runes) passes through untouched. The cipher is a toy: it
// exists to be broken by the cryptanalysis package, not to protect
// anything.
package caesar

// Alphabet is the canonical letter ordering. Index into it is the
// rotation group element for each letter: 'a' is 0, 'z' is 25.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// AlphabetSize is the order of the rotation group.
const AlphabetSize = len(Alphabet)

// Index returns the position of a letter within Alphabet, lowercasing
// first. Returns -1 for anything that is not an ASCII letter.
func Index(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	default:
		return -1
	}
}

// Encrypt rotates every ASCII letter of text forward by shift positions,
// wrapping modulo 26. Output letters are always lowercase; non-letter
// runes keep their position and form. Any integer shift is valid,
// including negative and out-of-range values.
func Encrypt(text string, shift int) string {
	return rotate(text, shift)
}

// Decrypt reverses Encrypt with the same shift.
func Decrypt(text string, shift int) string {
	return rotate(text, -shift)
}

func rotate(text string, shift int) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		idx := Index(r)
		if idx < 0 {
			out = append(out, r)
			continue
		}
		out = append(out, rune(Alphabet[mod(idx+shift, AlphabetSize)]))
	}
	return string(out)
}

// mod is the true (always non-negative) remainder. Go's % operator
// keeps the sign of the dividend, which would index off the front of
// the alphabet for negative shifts.
func mod(n, m int) int {
	return ((n % m) + m) % m
}
