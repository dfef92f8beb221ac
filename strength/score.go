package strength

// Policy holds the tunable constants of the scoring rule set. The zero
// value is not useful; start from DefaultPolicy.
type Policy struct {
	// MinRepeatRun is the shortest run of one character counted as
	// repetition.
	MinRepeatRun int

	// MinSequenceRun is the shortest alphabet slice counted as a
	// sequential pattern.
	MinSequenceRun int

	// LowEntropyThreshold is the estimate, in bits, below which the
	// low-entropy penalty applies.
	LowEntropyThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{
		MinRepeatRun:        3,
		MinSequenceRun:      3,
		LowEntropyThreshold: 28,
	}
}

// Aggregate combines extracted features into a clamped score, a verdict,
// and an ordered list of recommendations. Each rule contributes at most one
// recommendation; the order is fixed: length, common, repetition, sequence,
// entropy, then general advice for scores below 60.
func (p Policy) Aggregate(features Features) Analysis {
	analysis := Analysis{
		Features:        features,
		Recommendations: []string{},
	}

	score := 0

	switch {
	case features.Length >= 16:
		score += 30
	case features.Length >= 12:
		score += 20
	case features.Length >= 8:
		score += 10
	default:
		analysis.Recommendations = append(analysis.Recommendations, RecommendLength)
	}

	for _, present := range []bool{
		features.HasLowercase,
		features.HasUppercase,
		features.HasDigit,
		features.HasSpecial,
	} {
		if present {
			score += 10
		}
	}

	if features.IsCommon {
		score -= 40
		analysis.Recommendations = append(analysis.Recommendations, RecommendUncommon)
	}

	if features.HasRepetition {
		score -= 10
		analysis.Recommendations = append(analysis.Recommendations, RecommendNoRepeats)
	}

	if features.HasSequence {
		score -= 10
		analysis.Recommendations = append(analysis.Recommendations, RecommendNoSequence)
	}

	if features.EntropyBits < p.LowEntropyThreshold {
		score -= 10
		analysis.Recommendations = append(analysis.Recommendations, RecommendEntropy)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	analysis.Score = score
	analysis.Verdict = VerdictForScore(score)

	if score < 60 {
		analysis.Recommendations = append(analysis.Recommendations, RecommendPassphrase)
	}

	return analysis
}
