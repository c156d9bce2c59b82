package services

import (
	"strings"

	"github.com/milohq/milo/internal/llm"
)

// OnboardingGreeting seeds a fresh session. It doubles as question one of the
// onboarding script, so the first user reply is treated as their name.
const OnboardingGreeting = "Hi! I'm Milo, your wellness companion. I'm excited to get to know you. What's your name?"

// IsPlanReadyReply detects session completion in an AI reply. The match is a
// case-insensitive substring so casing drift in model output cannot leave a
// session open forever.
func IsPlanReadyReply(reply string) bool {
	return strings.Contains(strings.ToLower(reply), llm.PlanReadyMarker)
}

// IsNameCaptureTurn reports whether the incoming user turn carries the user's
// name. The transcript at that point holds only the greeting, making the
// full history two turns long once the reply is appended.
func IsNameCaptureTurn(persistedTurns int) bool {
	return persistedTurns == 1
}

// SanitizeCapturedName trims the reply used as a display name. The first
// reply is assumed to be the name and is not validated further.
func SanitizeCapturedName(reply string) string {
	return strings.TrimSpace(reply)
}
