package domain

import "context"

// Model is the external trained model collaborator. Predict is synchronous
// and deterministic for identical input; the artifact behind it is loaded
// once and read-only, so implementations must be safe for concurrent use.
type Model interface {
	Predict(ctx context.Context, features FeatureVector) (int, error)
}
