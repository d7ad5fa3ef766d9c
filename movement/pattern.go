package movement

import (
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
)

const (
	PatternNew            = "new"
	PatternFirstMovement  = "first_movement"
	PatternBackAndForth   = "back_and_forth"
	PatternStuck          = "stuck"
	PatternSteadyProgress = "steady_progress"
	PatternNormal         = "normal"
)

const (
	backAndForthRatio = 0.3
	stuckAfterDays    = 7
)

type Pattern struct {
	TotalMovements       int    `json:"total_movements"`
	ForwardMovements     int    `json:"forward_movements"`
	BackwardMovements    int    `json:"backward_movements"`
	Pattern              string `json:"pattern"`
	IsFirstMovement      bool   `json:"is_first_movement"`
	FrequentBackAndForth bool   `json:"frequent_back_and_forth"`
	StuckInColumn        bool   `json:"stuck_in_column"`
	DaysInCurrentColumn  int    `json:"days_in_current_column"`
}

// AnalyzePattern classifies a card's movement history. history must be in
// timestamp order; now is the reference time for stuck detection.
func AnalyzePattern(history []models.Movement, now time.Time) Pattern {
	if len(history) == 0 {
		return Pattern{Pattern: PatternNew, IsFirstMovement: true}
	}

	p := Pattern{TotalMovements: len(history)}
	for _, m := range history {
		switch DirectionOf(Column(m.FromColumn), Column(m.ToColumn)) {
		case Forward:
			p.ForwardMovements++
		case Backward:
			p.BackwardMovements++
		}
	}

	p.FrequentBackAndForth = float64(p.BackwardMovements) > float64(p.TotalMovements)*backAndForthRatio

	if last, ok := history[len(history)-1].Time(); ok {
		// Whole days only, 7 days and 23 hours is not stuck yet.
		p.DaysInCurrentColumn = int(now.Sub(last).Hours() / 24)
		p.StuckInColumn = p.DaysInCurrentColumn > stuckAfterDays
	}

	p.IsFirstMovement = p.TotalMovements == 1
	switch {
	case p.IsFirstMovement:
		p.Pattern = PatternFirstMovement
	case p.FrequentBackAndForth:
		p.Pattern = PatternBackAndForth
	case p.StuckInColumn:
		p.Pattern = PatternStuck
	case p.BackwardMovements == 0:
		p.Pattern = PatternSteadyProgress
	default:
		p.Pattern = PatternNormal
	}
	return p
}
