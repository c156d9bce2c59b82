package sentiment

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("sentiment service unavailable")

// Analyzer scores a plain-text document. Scores are conventionally in
// [-1, 1], negative meaning negative sentiment.
type Analyzer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// FixedAnalyzer returns a constant score. It backs tests and deployments
// without Cloud Natural Language credentials.
type FixedAnalyzer struct {
	Value float64
	Err   error
}

func (f *FixedAnalyzer) Score(context.Context, string) (float64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Value, nil
}
