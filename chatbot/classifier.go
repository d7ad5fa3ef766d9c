// Package chatbot turns a card movement into a templated coaching reply.
package chatbot

import "github.com/andrewpaige1/srlboard-api/movement"

// ResponseType selects the reply template.
type ResponseType string

const (
	StartTask             ResponseType = "start_task"
	ReviewTask            ResponseType = "review_task"
	CompleteTask          ResponseType = "complete_task"
	StepBackToPlanning    ResponseType = "step_back_to_planning"
	StepBackToMonitoring  ResponseType = "step_back_to_monitoring"
	StepBackToControlling ResponseType = "step_back_to_controlling"
	StrugglingPattern     ResponseType = "struggling_pattern"
	StuckPattern          ResponseType = "stuck_pattern"
	ShortSessionsPattern  ResponseType = "short_sessions_pattern"
	LongSessionsPattern   ResponseType = "long_sessions_pattern"
	HighComplexity        ResponseType = "high_complexity"
	General               ResponseType = "general"
)

// Classify picks the response type for a movement. The first matching rule
// wins: known column transitions, then movement pattern, then study time,
// then complexity. Anything else is General.
func Classify(from, to string, pattern movement.Pattern, study movement.StudyTime, complexity movement.Complexity) ResponseType {
	if info, ok := movement.Lookup(movement.Column(from), movement.Column(to)); ok && info.ResponseType != "" {
		return ResponseType(info.ResponseType)
	}

	switch {
	case pattern.FrequentBackAndForth:
		return StrugglingPattern
	case pattern.StuckInColumn:
		return StuckPattern
	}

	switch study.StudyPattern {
	case movement.StudyShortSessions:
		return ShortSessionsPattern
	case movement.StudyLongSessions:
		return LongSessionsPattern
	}

	if complexity.NeedsAttention {
		return HighComplexity
	}
	return General
}
