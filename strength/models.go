package strength

// Features are the structural signals extracted from a candidate password.
// Extraction is a pure function of the input string: every string, including
// the empty one, produces a valid record.
type Features struct {
	Length       int  `json:"length"`
	HasLowercase bool `json:"has_lowercase"`
	HasUppercase bool `json:"has_uppercase"`
	HasDigit     bool `json:"has_digit"`

	// HasSpecial is true when any character falls outside [A-Za-z0-9_].
	// Underscore is not special; whitespace is.
	HasSpecial bool `json:"has_special"`

	IsCommon      bool `json:"is_common"`
	HasRepetition bool `json:"has_repetition"`
	HasSequence   bool `json:"has_sequence"`

	// EntropyBits is the Shannon entropy of the password's own character
	// distribution multiplied by its length. It is a structural proxy for
	// randomness, not a measure of how the password was generated.
	EntropyBits float64 `json:"entropy_bits"`
}

// Analysis is the complete result of evaluating a candidate password.
type Analysis struct {
	Features

	Score           int      `json:"score"`
	Verdict         Verdict  `json:"verdict"`
	Recommendations []string `json:"recommendations"`
}

// Verdict is one of five ordered labels derived from the clamped score.
type Verdict string

const (
	VeryWeak   Verdict = "Very Weak"
	Weak       Verdict = "Weak"
	Moderate   Verdict = "Moderate"
	Strong     Verdict = "Strong"
	VeryStrong Verdict = "Very Strong"
)

// VerdictForScore maps a clamped score onto its verdict band.
func VerdictForScore(score int) Verdict {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Moderate
	case score < 80:
		return Strong
	default:
		return VeryStrong
	}
}

const (
	RecommendLength     = "Increase password length (minimum 12 characters recommended)."
	RecommendUncommon   = "Avoid commonly used passwords."
	RecommendNoRepeats  = "Avoid repeated characters (e.g., 'aaa')."
	RecommendNoSequence = "Avoid sequential patterns (e.g., '1234', 'abcd')."
	RecommendEntropy    = "Password entropy is low; use a longer, more random password."
	RecommendPassphrase = "Consider using a long passphrase or a password manager to generate strong passwords."
)
