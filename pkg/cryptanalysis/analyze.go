package cryptanalysis

import (
	"errors"
	"sort"

	"shiftbreak/pkg/caesar"
)

// Candidate pairs a shift key with the English-closeness score of the
// plaintext produced by decrypting under that key.
type Candidate struct {
	Shift int
	Score float64
}

// Analyze mounts a ciphertext-only attack: it decrypts ciphertext under
// every shift in [0,25], scores each candidate plaintext against the
// English reference frequencies, and returns all 26 candidates ordered
// ascending by score (ties broken by smaller shift). The first entry is
// the most plausible key; the full ranking is returned because short or
// skewed ciphertexts can push the true key a few places down.
//
// A ciphertext with no alphabetic characters is not an error: every
// candidate decryption is equally (non-)English, so all 26 score zero
// and come back in shift order.
func Analyze(ciphertext string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, caesar.AlphabetSize)
	for shift := 0; shift < caesar.AlphabetSize; shift++ {
		profile, err := LetterFrequency(caesar.Decrypt(ciphertext, shift))
		if err != nil {
			if errors.Is(err, ErrNoLetters) {
				candidates = append(candidates, Candidate{Shift: shift})
				continue
			}
			return nil, err
		}

		score, err := Score(profile)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Shift: shift, Score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].Shift < candidates[j].Shift
	})

	return candidates, nil
}

// BestShift returns only the top-ranked shift from Analyze.
func BestShift(ciphertext string) (int, error) {
	candidates, err := Analyze(ciphertext)
	if err != nil {
		return 0, err
	}
	return candidates[0].Shift, nil
}
