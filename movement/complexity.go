package movement

import (
	"strings"

	"github.com/andrewpaige1/srlboard-api/models"
)

const (
	ComplexityLow      = "low"
	ComplexityMedium   = "medium"
	ComplexityHigh     = "high"
	ComplexityVeryHigh = "very_high"
)

var (
	difficultyLevels = map[string]int{"easy": 1, "medium": 2, "hard": 3}
	priorityLevels   = map[string]int{"low": 1, "medium": 2, "high": 3}
	estimatedTimes   = map[string]string{
		"easy":   "30-60 minutes",
		"medium": "1-2 hours",
	}
)

const longEstimate = "2-4 hours"

type Complexity struct {
	Difficulty      string `json:"difficulty"`
	Priority        string `json:"priority"`
	DifficultyLevel int    `json:"difficulty_level"`
	PriorityLevel   int    `json:"priority_level"`
	Complexity      string `json:"complexity"`
	EstimatedTime   string `json:"estimated_time"`
	NeedsAttention  bool   `json:"needs_attention"`
}

// AnalyzeComplexity combines a card's difficulty and priority. Missing values
// read as medium. Unrecognised values such as "expert" are kept as given but
// rank at level 2, and any difficulty other than easy or medium gets the long
// estimate.
func AnalyzeComplexity(card models.Card) Complexity {
	c := Complexity{
		Difficulty: normalizeLevel(card.Difficulty),
		Priority:   normalizeLevel(card.Priority),
	}
	c.DifficultyLevel = levelOf(c.Difficulty, difficultyLevels)
	c.PriorityLevel = levelOf(c.Priority, priorityLevels)
	c.EstimatedTime = longEstimate
	if est, ok := estimatedTimes[c.Difficulty]; ok {
		c.EstimatedTime = est
	}

	switch {
	case c.DifficultyLevel == 3 && c.PriorityLevel == 3:
		c.Complexity = ComplexityVeryHigh
	case c.DifficultyLevel >= 2 && c.PriorityLevel >= 2:
		c.Complexity = ComplexityHigh
	case c.DifficultyLevel == 1 && c.PriorityLevel == 1:
		c.Complexity = ComplexityLow
	default:
		c.Complexity = ComplexityMedium
	}
	c.NeedsAttention = c.Complexity == ComplexityHigh || c.Complexity == ComplexityVeryHigh
	return c
}

func normalizeLevel(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "medium"
	}
	return value
}

func levelOf(value string, levels map[string]int) int {
	if level, ok := levels[value]; ok {
		return level
	}
	return 2
}
