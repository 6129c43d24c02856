package retriever

// SimilarityTier grades how close a match is, from 1 (low) to 5 (very high).
// The integer value doubles as the star count shown to users.
type SimilarityTier int

const (
	TierLow SimilarityTier = iota + 1
	TierModerate
	TierGood
	TierHigh
	TierVeryHigh
)

// distance cutoffs between tiers, a distance exactly on a cutoff takes
// the higher tier
const (
	veryHighMaxDistance = 0.5
	highMaxDistance     = 0.8
	goodMaxDistance     = 1.0
	moderateMaxDistance = 1.2
)

// ClassifySimilarity maps a cosine distance to a similarity tier
func ClassifySimilarity(distance float64) SimilarityTier {
	switch {
	case distance <= veryHighMaxDistance:
		return TierVeryHigh
	case distance <= highMaxDistance:
		return TierHigh
	case distance <= goodMaxDistance:
		return TierGood
	case distance <= moderateMaxDistance:
		return TierModerate
	default:
		return TierLow
	}
}

// Label returns the tier name shown to users
func (t SimilarityTier) Label() string {
	switch t {
	case TierVeryHigh:
		return "very high"
	case TierHigh:
		return "high"
	case TierGood:
		return "good"
	case TierModerate:
		return "moderate"
	default:
		return "low"
	}
}

// Stars returns the tier as a star count out of five
func (t SimilarityTier) Stars() int {
	return int(t)
}

// Similarity converts a cosine distance to a 0..1 similarity score
func Similarity(distance float64) float64 {
	return 1 / (1 + distance)
}
