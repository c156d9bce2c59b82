package services

import "testing"

func TestRiskFromSentimentBands(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{name: "deeply negative", score: -0.8, want: 5},
		{name: "band edge high risk", score: -0.7, want: 4},
		{name: "elevated", score: -0.5, want: 4},
		{name: "moderate", score: -0.2, want: 3},
		{name: "neutral", score: 0.0, want: 2},
		{name: "positive", score: 0.5, want: 1},
		{name: "below conventional range", score: -3.0, want: 5},
		{name: "above conventional range", score: 2.0, want: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := RiskFromSentiment(testCase.score); got != testCase.want {
				t.Fatalf("expected tier %d for score %v, got %d", testCase.want, testCase.score, got)
			}
		})
	}
}

func TestRiskFromSentimentIsMonotoneAndBounded(t *testing.T) {
	previous := 6
	for score := -1.5; score <= 1.5; score += 0.01 {
		tier := RiskFromSentiment(score)
		if tier < 1 || tier > 5 {
			t.Fatalf("tier %d out of range for score %v", tier, score)
		}
		if tier > previous {
			t.Fatalf("tier increased from %d to %d as score rose to %v", previous, tier, score)
		}
		previous = tier
	}
}

func TestRiskFromQuestionnaire(t *testing.T) {
	tests := []struct {
		name   string
		phq9   int
		gad7   int
		safety bool
		want   int
	}{
		{name: "safety flag dominates zero scores", phq9: 0, gad7: 0, safety: true, want: 5},
		{name: "safety flag dominates severe scores", phq9: 27, gad7: 21, safety: true, want: 5},
		{name: "severe depression", phq9: 25, gad7: 0, want: 4},
		{name: "severe anxiety", phq9: 0, gad7: 15, want: 4},
		{name: "moderate depression", phq9: 15, gad7: 0, want: 3},
		{name: "moderate anxiety", phq9: 0, gad7: 10, want: 3},
		{name: "mild either", phq9: 5, gad7: 0, want: 2},
		{name: "minimal", phq9: 4, gad7: 4, want: 1},
		{name: "all zero", phq9: 0, gad7: 0, want: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := RiskFromQuestionnaire(testCase.phq9, testCase.gad7, testCase.safety)
			if got != testCase.want {
				t.Fatalf("expected tier %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestRiskLabelsCoverAllTiers(t *testing.T) {
	for tier := 1; tier <= 5; tier++ {
		if RiskLabel(tier) == "" {
			t.Fatalf("missing label for tier %d", tier)
		}
		if RiskDescription(tier) == "" {
			t.Fatalf("missing description for tier %d", tier)
		}
	}
	if RiskLabel(0) != "" || RiskLabel(6) != "" {
		t.Fatal("expected empty label outside tiers 1..5")
	}
}

func TestRiskRequiresSupportBanner(t *testing.T) {
	if RiskRequiresSupportBanner(3) {
		t.Fatal("tier 3 should not require the support banner")
	}
	if !RiskRequiresSupportBanner(4) || !RiskRequiresSupportBanner(5) {
		t.Fatal("tiers 4 and 5 should require the support banner")
	}
}

func TestClampRiskLevelBoundsTiers(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, test := range tests {
		if got := clampRiskLevel(test.level); got != test.want {
			t.Fatalf("clampRiskLevel(%d) = %d, want %d", test.level, got, test.want)
		}
	}
}
