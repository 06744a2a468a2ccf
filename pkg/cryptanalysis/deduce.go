package cryptanalysis

import (
	"math"

	"shiftbreak/pkg/caesar"
)

// DeduceKey mounts a known-plaintext attack: given a plaintext and the
// ciphertext produced by shift-enciphering it, it recovers the shift
// from the average difference of alphabet indices at each position.
// Returns false when either input is empty or the character counts
// differ; that is an insufficient-input outcome, not a fault.
//
// Positions where either character is non-alphabetic contribute nothing
// to the sum but still count toward the averaging denominator, so the
// result is approximate on noisy or punctuated samples. With fully
// alphabetic, cleanly corresponding text the recovery is exact.
func DeduceKey(plaintext, ciphertext string) (int, bool) {
	plain := []rune(plaintext)
	cipher := []rune(ciphertext)
	if len(plain) == 0 || len(cipher) == 0 || len(plain) != len(cipher) {
		return 0, false
	}

	sum := 0.0
	for i, p := range plain {
		plainIdx := caesar.Index(p)
		cipherIdx := caesar.Index(cipher[i])
		if plainIdx < 0 || cipherIdx < 0 {
			continue
		}
		sum += float64(cipherIdx - plainIdx)
	}

	// True mod: the average is negative whenever the cipher indices
	// mostly wrapped, and math.Mod keeps the dividend's sign.
	avg := math.Mod(sum/float64(len(plain)), float64(caesar.AlphabetSize))
	if avg < 0 {
		avg += float64(caesar.AlphabetSize)
	}

	// avg sits in [0,26); rounding can still land on 26 exactly.
	return int(math.Round(avg)) % caesar.AlphabetSize, true
}
