package wordlist

import (
	"bufio"
	"io"
	"strings"
)

// Wordlist is an immutable, case-insensitive set of known-weak passwords.
// It is safe for concurrent lookups once constructed.
type Wordlist struct {
	words map[string]struct{}
}

// Default returns the built-in common-password set. It is intentionally
// tiny: this tool is a structural heuristic, not a breach-database lookup.
func Default() *Wordlist {
	return New(
		"123456", "password", "12345678", "qwerty", "abc123",
		"111111", "1234567890", "password1", "iloveyou",
	)
}

func New(words ...string) *Wordlist {
	w := &Wordlist{
		words: make(map[string]struct{}, len(words)),
	}

	for _, word := range words {
		w.words[strings.ToLower(word)] = struct{}{}
	}

	return w
}

// FromReader builds a wordlist from one entry per line, ignoring blank
// lines and surrounding whitespace.
func FromReader(r io.Reader) (*Wordlist, error) {
	w := &Wordlist{
		words: make(map[string]struct{}),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		w.words[strings.ToLower(word)] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Wordlist) Contains(password string) bool {
	_, ok := w.words[strings.ToLower(password)]
	return ok
}

func (w *Wordlist) Len() int {
	return len(w.words)
}
