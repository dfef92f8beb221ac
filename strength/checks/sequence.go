package checks

import (
	"strings"
	"unicode/utf8"
)

// Reference alphabets for sequential-pattern detection.
const (
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitAlphabet     = "0123456789"
)

// Sequence detects contiguous slices of the given alphabets, forward or
// reversed, of exactly window characters: "abc", "cba", "123", "321".
func Sequence(window int, alphabets ...string) Matcher {
	m := &sequenceMatcher{}

	for _, alphabet := range alphabets {
		runes := []rune(alphabet)
		for i := 0; i+window <= len(runes); i++ {
			sub := string(runes[i : i+window])
			m.windows = append(m.windows, sub, reversed(sub))
		}
	}

	return m
}

// DefaultSequence detects three-character slices of the lowercase,
// uppercase, and digit alphabets.
func DefaultSequence() Matcher {
	return Sequence(3, LowercaseAlphabet, UppercaseAlphabet, DigitAlphabet)
}

type sequenceMatcher struct {
	windows []string
}

func (m *sequenceMatcher) Match(password string) (bool, int, int) {
	earliest := -1
	width := 0

	for _, w := range m.windows {
		idx := strings.Index(password, w)
		if idx == -1 {
			continue
		}

		if earliest == -1 || idx < earliest {
			earliest = idx
			width = len(w)
		}
	}

	if earliest == -1 {
		return false, 0, 0
	}

	start := utf8.RuneCountInString(password[:earliest])
	length := utf8.RuneCountInString(password[earliest : earliest+width])

	return true, start, start + length
}

func reversed(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
