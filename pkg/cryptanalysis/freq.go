// Package cryptanalysis recovers the key of a Caesar-enciphered text.
//
// Two attacks are implemented:
//
//   - Ciphertext-only: Analyze decrypts under every possible shift,
//     profiles the letter frequencies of each candidate plaintext, and
//     ranks the 26 shifts by how closely each profile tracks published
//     English letter frequencies. The smallest score is the most
//     plausible key.
//   - Known-plaintext: DeduceKey recovers the shift directly from an
//     aligned plaintext/ciphertext pair by index arithmetic.
package cryptanalysis

import (
	"errors"
	"fmt"

	"shiftbreak/pkg/caesar"
)

var (
	// ErrNoLetters is returned when frequency profiling is asked to
	// operate on text with zero alphabetic characters.
	ErrNoLetters = errors.New("text contains no alphabetic characters")

	// ErrUnknownSymbol is returned when a profile carries a key outside
	// the 26-letter alphabet. Unreachable for profiles built by
	// LetterFrequency.
	ErrUnknownSymbol = errors.New("symbol outside the alphabet")
)

// Profile maps each lowercase letter observed in a text to its relative
// frequency among the text's alphabetic characters. The domain is
// exactly the set of distinct letters observed, never the full
// alphabet; values sum to 1.0.
type Profile map[rune]float64

// LetterFrequency profiles text, counting ASCII letters
// case-insensitively and ignoring everything else. Returns ErrNoLetters
// if no alphabetic character occurs.
func LetterFrequency(text string) (Profile, error) {
	counts := make(Profile)
	total := 0.0
	for _, r := range text {
		if idx := caesar.Index(r); idx >= 0 {
			counts[rune(caesar.Alphabet[idx])]++
			total++
		}
	}
	if total == 0 {
		return nil, ErrNoLetters
	}

	for letter := range counts {
		counts[letter] /= total
	}
	return counts, nil
}

// Score measures how far a profile sits from English prose: the sum of
// (observed - reference) over every letter present in the profile.
// Smaller means closer to English.
//
// The sum is signed, so over- and under-represented letters can cancel,
// and letters absent from the profile contribute nothing rather than
// their full reference weight. This matches the original phi metric and
// is kept for behavioral compatibility; an absolute or squared
// difference would discriminate better.
func Score(p Profile) (float64, error) {
	score := 0.0
	for letter, observed := range p {
		reference, ok := ReferenceFrequency(letter)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, letter)
		}
		score += observed - reference
	}
	return score, nil
}
