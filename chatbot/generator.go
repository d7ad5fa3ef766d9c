package chatbot

import (
	"strconv"
	"strings"
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/andrewpaige1/srlboard-api/movement"
)

// Fallbacks used when a placeholder has nothing to show.
const (
	fallbackCardTitle   = "this task"
	fallbackStrategy    = "not selected"
	fallbackDescription = "no description"
	fallbackTotalTime   = "no data yet"
)

// Context is everything the generator needs to compose one reply. Strategy is
// nil when the card has no learning strategy or it could not be found.
type Context struct {
	Card     models.Card
	Strategy *models.LearningStrategy
	Analysis movement.Analysis
}

// Response is the reply returned to the client and stored in the audit log.
type Response struct {
	ResponseType        ResponseType          `json:"response_type"`
	Message             string                `json:"message"`
	Suggestions         []string              `json:"suggestions"`
	ReflectionQuestions []string              `json:"reflection_questions"`
	Timestamp           time.Time             `json:"timestamp"`
	ContextSummary      models.ContextSummary `json:"context_summary"`
}

type Generator struct {
	selector Selector
}

func NewGenerator(selector Selector) *Generator {
	if selector == nil {
		selector = NewTimeSeededSelector()
	}
	return &Generator{selector: selector}
}

// Generate composes the reply for rt. The only randomness is the choice of
// variant per slot, which goes through the Selector.
func (g *Generator) Generate(rt ResponseType, c Context, now time.Time) Response {
	return Response{
		ResponseType:        rt,
		Message:             g.message(rt, c),
		Suggestions:         suggestions(rt, c.Analysis.Complexity),
		ReflectionQuestions: reflectionQuestions(rt),
		Timestamp:           now,
		ContextSummary:      Summarize(c),
	}
}

func (g *Generator) message(rt ResponseType, c Context) string {
	tmpl := templateFor(rt)
	replacer := placeholders(c)

	var parts []string
	for _, slot := range slotOrder {
		var variants []string
		switch slot {
		case SlotDifficultyTip:
			variants = tmpl.DifficultyTips[c.Analysis.Complexity.Difficulty]
		case SlotStrategyIntro:
			if c.Strategy == nil {
				continue
			}
			variants = tmpl.Slots[slot]
		case SlotReflectionPrompt:
			if strings.TrimSpace(c.Card.Notes) == "" {
				continue
			}
			variants = tmpl.Slots[slot]
		default:
			variants = tmpl.Slots[slot]
		}
		if len(variants) == 0 {
			continue
		}
		parts = append(parts, replacer.Replace(variants[g.pick(len(variants))]))
	}
	return strings.Join(parts, "\n\n")
}

// pick clamps the selector result so a misbehaving Selector cannot panic.
func (g *Generator) pick(n int) int {
	i := g.selector.Pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

func placeholders(c Context) *strings.Replacer {
	title := c.Card.Title
	if strings.TrimSpace(title) == "" {
		title = fallbackCardTitle
	}

	strategyName, strategyDesc := fallbackStrategy, fallbackDescription
	if c.Strategy != nil {
		if c.Strategy.Name != "" {
			strategyName = c.Strategy.Name
		}
		if c.Strategy.Description != "" {
			strategyDesc = c.Strategy.Description
		}
	}

	totalTime := fallbackTotalTime
	if c.Analysis.StudyTime.TotalTimeMinutes > 0 {
		totalTime = c.Analysis.StudyTime.TotalTimeFormatted
	}

	col := c.Analysis.Column
	return strings.NewReplacer(
		"{card_title}", title,
		"{strategy_name}", strategyName,
		"{strategy_description}", strategyDesc,
		"{estimated_time}", c.Analysis.Complexity.EstimatedTime,
		"{total_time}", totalTime,
		"{total_movements}", strconv.Itoa(c.Analysis.Pattern.TotalMovements),
		"{average_session}", strconv.FormatFloat(c.Analysis.StudyTime.AverageSessionTime, 'f', 0, 64),
		"{from_column_name}", col.FromColumnName,
		"{to_column_name}", col.ToColumnName,
		"{column_name}", col.ToColumnName,
		"{notes}", strings.TrimSpace(c.Card.Notes),
	)
}

func suggestions(rt ResponseType, complexity movement.Complexity) []string {
	out := []string{}
	switch rt {
	case StartTask, ReviewTask, CompleteTask:
		out = append(out, lifecycleSuggestions...)
	}

	if rt == StartTask {
		if complexity.Difficulty == "hard" {
			return append(out, hardStartSuggestions...)
		}
		return append(out, startSuggestions...)
	}
	return append(out, typeSuggestions[rt]...)
}

func reflectionQuestions(rt ResponseType) []string {
	out := make([]string, 0, len(genericReflectionQuestions)+3)
	out = append(out, genericReflectionQuestions...)
	specific := typeReflectionQuestions[rt]
	if len(specific) > 3 {
		specific = specific[:3]
	}
	return append(out, specific...)
}

// Summarize condenses the analysis into the record attached to each reply.
func Summarize(c Context) models.ContextSummary {
	a := c.Analysis
	return models.ContextSummary{
		CardTitle:        c.Card.Title,
		CardDifficulty:   a.Complexity.Difficulty,
		CardPriority:     a.Complexity.Priority,
		MovementType:     string(a.Column.MovementType),
		Phase:            a.Column.Phase,
		IsMilestone:      a.Column.IsMilestone,
		StudyPattern:     a.StudyTime.StudyPattern,
		TotalTimeMinutes: a.StudyTime.TotalTimeMinutes,
		MovementPattern:  a.Pattern.Pattern,
		Complexity:       a.Complexity.Complexity,
	}
}
