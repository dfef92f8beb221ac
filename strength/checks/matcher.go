package checks

//go:generate counterfeiter . Matcher

// Matcher reports whether a password contains the pattern it detects.
// Start and end are rune offsets of the first match.
type Matcher interface {
	Match(password string) (bool, int, int)
}
