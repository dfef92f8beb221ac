package strength

import "math"

// EntropyBits estimates the total information content of a password, in
// bits: the Shannon entropy of its character-frequency distribution scaled
// by its length, rounded to two decimal places. A sample this small says
// nothing about the process that generated the password, so treat the
// number as a structural heuristic only.
func EntropyBits(password string) float64 {
	if password == "" {
		return 0.0
	}

	counts := make(map[rune]int)
	length := 0
	for _, r := range password {
		counts[r]++
		length++
	}

	perSymbol := 0.0
	for _, count := range counts {
		p := float64(count) / float64(length)
		perSymbol -= p * math.Log2(p)
	}

	return math.Round(perSymbol*float64(length)*100) / 100
}
