package movement

import (
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
)

type ColumnMove struct {
	FromColumn     string    `json:"from_column"`
	ToColumn       string    `json:"to_column"`
	FromColumnName string    `json:"from_column_name"`
	ToColumnName   string    `json:"to_column_name"`
	MovementType   Direction `json:"movement_type"`
	Phase          string    `json:"phase"`
	IsMilestone    bool      `json:"is_milestone"`
	IsForward      bool      `json:"is_forward"`
	IsBackward     bool      `json:"is_backward"`
}

func AnalyzeColumnMove(from, to string) ColumnMove {
	fromCol, toCol := Column(from), Column(to)
	dir := DirectionOf(fromCol, toCol)

	cm := ColumnMove{
		FromColumn:     from,
		ToColumn:       to,
		FromColumnName: fromCol.DisplayName(),
		ToColumnName:   toCol.DisplayName(),
		MovementType:   dir,
		Phase:          PhaseOther,
		IsForward:      dir == Forward,
		IsBackward:     dir == Backward,
	}
	if info, ok := Lookup(fromCol, toCol); ok {
		cm.Phase = info.Phase
		cm.IsMilestone = info.Milestone
	}
	return cm
}

// Analysis is everything known about one card movement.
type Analysis struct {
	Pattern    Pattern    `json:"movement_pattern"`
	StudyTime  StudyTime  `json:"time_analysis"`
	Complexity Complexity `json:"difficulty_priority_analysis"`
	Column     ColumnMove `json:"column_analysis"`
}

// Analyze runs every analysis for a card moving from one column to another.
func Analyze(card models.Card, sessions []models.StudySession, from, to string, now time.Time) Analysis {
	return Analysis{
		Pattern:    AnalyzePattern(card.ColumnMovements, now),
		StudyTime:  AnalyzeStudyTime(sessions),
		Complexity: AnalyzeComplexity(card),
		Column:     AnalyzeColumnMove(from, to),
	}
}
