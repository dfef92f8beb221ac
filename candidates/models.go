package candidates

import (
	"strings"
	"unicode/utf8"
)

// Candidate is a single password drawn from an audit source.
type Candidate struct {
	Source     string
	LineNumber int
	Password   string
}

// Masked returns a placeholder of the same character length, for display
// paths that must not echo the password itself.
func (c Candidate) Masked() string {
	return strings.Repeat("*", utf8.RuneCountInString(c.Password))
}
