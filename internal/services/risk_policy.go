package services

import "github.com/milohq/milo/internal/models"

// RiskFromSentiment maps a document sentiment score (conventionally in
// [-1, 1]) to a discrete risk tier. Total over all finite inputs: any score
// lands in exactly one band.
func RiskFromSentiment(score float64) int {
	switch {
	case score < -0.7:
		return 5
	case score < -0.4:
		return 4
	case score < -0.1:
		return 3
	case score < 0.1:
		return 2
	default:
		return 1
	}
}

// RiskFromQuestionnaire maps PHQ-9-like and GAD-7-like sub-scores plus the
// safety flag to a risk tier. The safety flag is a hard override: self-harm
// risk dominates any numeric reading and is never subject to threshold
// tuning.
func RiskFromQuestionnaire(phq9Score int, gad7Score int, safetyRisk bool) int {
	switch {
	case safetyRisk:
		return 5
	case phq9Score >= 20 || gad7Score >= 15:
		return 4
	case phq9Score >= 15 || gad7Score >= 10:
		return 3
	case phq9Score >= 5 || gad7Score >= 5:
		return 2
	default:
		return 1
	}
}

var riskLabels = map[int]string{
	1: "Wellbeing",
	2: "Mild Symptoms",
	3: "Moderate",
	4: "Severe",
	5: "Crisis",
}

var riskDescriptions = map[int]string{
	1: "You're doing great! Keep up the healthy habits.",
	2: "Some signs of stress. Let's work on some coping strategies.",
	3: "Noticeable symptoms affecting daily life. Regular support recommended.",
	4: "Significant impact on daily functioning. Professional help strongly recommended.",
	5: "Immediate professional intervention needed. Please reach out for help now.",
}

func RiskLabel(level int) string {
	return riskLabels[level]
}

func RiskDescription(level int) string {
	return riskDescriptions[level]
}

// RiskRequiresSupportBanner reports whether the dashboard should surface the
// immediate-support banner for this tier.
func RiskRequiresSupportBanner(level int) bool {
	return level >= 4
}

func clampRiskLevel(level int) int {
	if level < models.MinRiskLevel {
		return models.MinRiskLevel
	}
	if level > models.MaxRiskLevel {
		return models.MaxRiskLevel
	}
	return level
}
