package domain

// RiskBucket is a coarse, human-facing severity category derived from the
// model's integer score.
type RiskBucket string

const (
	BucketLow     RiskBucket = "Low"
	BucketMedium  RiskBucket = "Medium"
	BucketHigh    RiskBucket = "High"
	BucketExtreme RiskBucket = "Extreme"
)

// ScoreToBucket maps a risk score to its bucket via fixed inclusive upper
// bounds. Total over all integers: scores outside the documented 1-10 range
// resolve through the same ladder rather than erroring.
func ScoreToBucket(score int) RiskBucket {
	switch {
	case score <= 3:
		return BucketLow
	case score <= 6:
		return BucketMedium
	case score <= 8:
		return BucketHigh
	default:
		return BucketExtreme
	}
}

// Color returns the fixed display color paired with the bucket.
func (b RiskBucket) Color() string {
	switch b {
	case BucketLow:
		return "green"
	case BucketMedium:
		return "yellow"
	case BucketHigh:
		return "orange"
	case BucketExtreme:
		return "red"
	default:
		return ""
	}
}

// Rank orders buckets from Low (0) to Extreme (3) for monotonicity checks
// and alert filtering.
func (b RiskBucket) Rank() int {
	switch b {
	case BucketLow:
		return 0
	case BucketMedium:
		return 1
	case BucketHigh:
		return 2
	case BucketExtreme:
		return 3
	default:
		return -1
	}
}
