// Package domain implements the feature derivation and normalization pipeline
// for wildfire-risk scoring.
//
// # Feature Contract
//
// The trained model consumes a fixed 12-element feature vector in exactly this
// order:
//
//	X, Y, month_enc, day_enc, FFMC, DMC, DC, ISI, temp, RH, wind, rain
//
// X and Y are coarse grid coordinates from the park map used in the training
// data (small positive integers, defaulting to the mid-range cell 5,5). The
// ordering is a binding contract with the model artifact: any reordering
// silently corrupts predictions without producing an error.
//
// # Categorical Encoding
//
// Month and day labels are the short lowercase abbreviations used in the
// training dataset ("aug", "sun", ...). The training-time label encoder
// assigned ordinals in alphabetical label order, so the default vocabularies
// are:
//
//	months: apr aug dec feb jan jul jun mar may nov oct sep  → 0..11
//	days:   fri mon sat sun thu tue wed                      → 0..6
//
// Callers may send either a label or an already-encoded ordinal. Ordinals
// must lie within the vocabulary; anything else is an input error rather than
// a silent default.
//
// # Fire-Weather Indices
//
// FFMC, DMC, DC, and ISI are the Canadian Fire Weather Index components. When
// not supplied by the caller they are approximated from temperature, relative
// humidity, wind, and rainfall by fixed linear heuristics (see
// [EstimateIndices]). The heuristics are stateless per call and substitute for
// the canonical multi-day recursive formulas. Each index is clamped to the
// range observed in the training distribution:
//
//	FFMC [18.7, 96.2] | DMC [1.1, 291.3] | DC [7.9, 860.6] | ISI [0.0, 56.1]
//
// # Risk Buckets
//
// The model emits an integer score, documented as 1-10. Scores map to four
// ordered severity buckets with fixed display colors:
//
//	≤3 Low/green | ≤6 Medium/yellow | ≤8 High/orange | else Extreme/red
//
// The ladder is total over all integers, so an out-of-range score still
// resolves to a bucket instead of failing.
package domain
