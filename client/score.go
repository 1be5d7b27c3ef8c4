package client

// ScoreTier buckets a fact-check score for display.
type ScoreTier string

const (
	TierHigh   ScoreTier = "high"
	TierMedium ScoreTier = "medium"
	TierLow    ScoreTier = "low"
)

// Tier thresholds. A score at or above the threshold belongs to the tier.
const (
	HighScoreMin   = 70
	MediumScoreMin = 40
)

// TierForScore maps a fact-check score to its display tier.
func TierForScore(score int) ScoreTier {
	switch {
	case score >= HighScoreMin:
		return TierHigh
	case score >= MediumScoreMin:
		return TierMedium
	default:
		return TierLow
	}
}

// Label returns the user-facing wording for the tier.
func (t ScoreTier) Label() string {
	switch t {
	case TierHigh:
		return "Highly Accurate"
	case TierMedium:
		return "Somewhat Accurate"
	default:
		return "Questionable"
	}
}

// ScoreLabel maps a score directly to its display wording.
func ScoreLabel(score int) string {
	return TierForScore(score).Label()
}
