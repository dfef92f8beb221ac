// Package strength evaluates the structural strength of candidate
// passwords. It extracts signals (length, character classes, repetition,
// sequential patterns, common-list membership, a frequency-entropy
// estimate) and aggregates them into a bounded score, a verdict, and
// remediation advice. Evaluation is pure: no state is kept between calls
// and reference data is read-only, so a single Analyzer may be shared by
// any number of goroutines.
package strength

import (
	"code.cloudfoundry.org/lager"

	"github.com/passcheck/passcheck/strength/checks"
	"github.com/passcheck/passcheck/wordlist"
)

//go:generate counterfeiter . Analyzer

// Analyzer evaluates candidate passwords.
type Analyzer interface {
	Analyze(lager.Logger, string) Analysis
}

type analyzer struct {
	policy     Policy
	repeats    checks.Matcher
	sequences  checks.Matcher
	commonList *wordlist.Wordlist
}

func NewAnalyzer(policy Policy, commonList *wordlist.Wordlist) Analyzer {
	return &analyzer{
		policy:  policy,
		repeats: checks.Runs(policy.MinRepeatRun),
		sequences: checks.Sequence(
			policy.MinSequenceRun,
			checks.LowercaseAlphabet,
			checks.UppercaseAlphabet,
			checks.DigitAlphabet,
		),
		commonList: commonList,
	}
}

// NewDefaultAnalyzer uses the canonical policy and the built-in
// common-password list.
func NewDefaultAnalyzer() Analyzer {
	return NewAnalyzer(DefaultPolicy(), wordlist.Default())
}

func (a *analyzer) Analyze(logger lager.Logger, password string) Analysis {
	logger = logger.Session("analyze")
	logger.Debug("starting")

	analysis := a.policy.Aggregate(a.extract(password))

	// Log lines carry derived fields only, never the password itself.
	logger.Debug("done", lager.Data{
		"length":  analysis.Length,
		"score":   analysis.Score,
		"verdict": analysis.Verdict,
	})

	return analysis
}

func (a *analyzer) extract(password string) Features {
	features := Features{
		IsCommon:    a.commonList.Contains(password),
		EntropyBits: EntropyBits(password),
	}

	for _, r := range password {
		features.Length++

		switch {
		case r >= 'a' && r <= 'z':
			features.HasLowercase = true
		case r >= 'A' && r <= 'Z':
			features.HasUppercase = true
		case r >= '0' && r <= '9':
			features.HasDigit = true
		case r != '_':
			features.HasSpecial = true
		}
	}

	features.HasRepetition, _, _ = a.repeats.Match(password)
	features.HasSequence, _, _ = a.sequences.Match(password)

	return features
}
