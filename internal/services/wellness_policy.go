package services

import "math"

// ClampWellnessScore forces a sub-score into the [0, 10] band. NaN maps to 0.
func ClampWellnessScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// OverallWellnessScore is the arithmetic mean of the four sub-scores, rounded
// to one decimal. Equal weighting is a policy choice.
func OverallWellnessScore(mood float64, anxiety float64, stress float64, social float64) float64 {
	mean := (mood + anxiety + stress + social) / 4
	return math.Round(mean*10) / 10
}

// ShouldRecommendReferral is an OR over red flags: any single dimension is
// enough to recommend escalation. The aggregate alone is never trusted to
// suppress a referral.
func ShouldRecommendReferral(riskLevel int, mood float64, anxiety float64, stress float64, overall float64) bool {
	if riskLevel >= 4 {
		return true
	}
	if mood < 3 {
		return true
	}
	if anxiety > 7 || stress > 7 {
		return true
	}
	return overall < 3
}
