package cryptanalysis

// englishFrequencies is the relative frequency of each letter in English
// prose, per D. Denning, S. Akl, M. Heckman, T. Lunt, M. Morgenstern,
// P. Neumann, and R. Schell, "Views for Multilevel Database Security,"
// IEEE Transactions on Software Engineering 13 (2), pp. 129-140
// (Feb. 1987). Values sum to ~1.0. Package-level constant table, never
// mutated after init, safe for concurrent reads.
var englishFrequencies = map[rune]float64{
	'a': 0.080,
	'b': 0.015,
	'c': 0.030,
	'd': 0.040,
	'e': 0.130,
	'f': 0.020,
	'g': 0.015,
	'h': 0.060,
	'i': 0.065,
	'j': 0.005,
	'k': 0.005,
	'l': 0.035,
	'm': 0.030,
	'n': 0.070,
	'o': 0.080,
	'p': 0.020,
	'q': 0.002,
	'r': 0.065,
	's': 0.060,
	't': 0.090,
	'u': 0.030,
	'v': 0.010,
	'w': 0.015,
	'x': 0.005,
	'y': 0.020,
	'z': 0.002,
}

// ReferenceFrequency returns the English-prose frequency of a lowercase
// letter. The second return is false for anything outside 'a'..'z'.
func ReferenceFrequency(letter rune) (float64, bool) {
	f, ok := englishFrequencies[letter]
	return f, ok
}
