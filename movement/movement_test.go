package movement

import (
	"testing"
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func move(from, to string, at time.Time) models.Movement {
	return models.Movement{FromColumn: from, ToColumn: to, Timestamp: at.Format(time.RFC3339)}
}

func TestDirectionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to Column
		want Direction
	}{
		{Initial, List1, Forward},
		{List1, List4, Forward},
		{List3, List2, Backward},
		{List2, List2, Same},
		{List1, "archive", Unknown},
		{"", List1, Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DirectionOf(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestAnalyzePattern(t *testing.T) {
	t.Parallel()

	recent := now.Add(-time.Hour)

	tests := []struct {
		name    string
		history []models.Movement
		check   func(t *testing.T, p Pattern)
	}{
		{
			name: "no history",
			check: func(t *testing.T, p Pattern) {
				assert.Equal(t, PatternNew, p.Pattern)
				assert.Zero(t, p.TotalMovements)
				assert.False(t, p.StuckInColumn)
			},
		},
		{
			name:    "single movement",
			history: []models.Movement{move("list1", "list2", now.Add(-20*24*time.Hour))},
			check: func(t *testing.T, p Pattern) {
				assert.Equal(t, PatternFirstMovement, p.Pattern)
				assert.True(t, p.IsFirstMovement)
				assert.True(t, p.StuckInColumn)
			},
		},
		{
			name: "back and forth",
			history: []models.Movement{
				move("list1", "list2", recent),
				move("list2", "list1", recent),
				move("list1", "list2", recent),
				move("list2", "list1", recent),
			},
			check: func(t *testing.T, p Pattern) {
				assert.Equal(t, 4, p.TotalMovements)
				assert.Equal(t, 2, p.BackwardMovements)
				assert.Equal(t, 2, p.ForwardMovements)
				assert.True(t, p.FrequentBackAndForth)
				assert.Equal(t, PatternBackAndForth, p.Pattern)
			},
		},
		{
			name: "stuck for ten days",
			history: []models.Movement{
				move("list1", "list2", now.Add(-12*24*time.Hour)),
				move("list2", "list3", now.Add(-10*24*time.Hour)),
			},
			check: func(t *testing.T, p Pattern) {
				assert.True(t, p.StuckInColumn)
				assert.Equal(t, 10, p.DaysInCurrentColumn)
				assert.Equal(t, PatternStuck, p.Pattern)
			},
		},
		{
			name: "seven days is not stuck",
			history: []models.Movement{
				move("list1", "list2", now.Add(-9*24*time.Hour)),
				move("list2", "list3", now.Add(-7*24*time.Hour-23*time.Hour)),
			},
			check: func(t *testing.T, p Pattern) {
				assert.False(t, p.StuckInColumn)
				assert.Equal(t, PatternSteadyProgress, p.Pattern)
			},
		},
		{
			name: "steady progress",
			history: []models.Movement{
				move("initial", "list1", recent),
				move("list1", "list2", recent),
				move("list2", "list3", recent),
			},
			check: func(t *testing.T, p Pattern) {
				assert.Zero(t, p.BackwardMovements)
				assert.Equal(t, PatternSteadyProgress, p.Pattern)
			},
		},
		{
			name: "one step back in five is normal",
			history: []models.Movement{
				move("initial", "list1", recent),
				move("list1", "list2", recent),
				move("list2", "list3", recent),
				move("list3", "list2", recent),
				move("list2", "list3", recent),
			},
			check: func(t *testing.T, p Pattern) {
				assert.Equal(t, 1, p.BackwardMovements)
				assert.False(t, p.FrequentBackAndForth)
				assert.Equal(t, PatternNormal, p.Pattern)
			},
		},
		{
			name: "unknown columns and malformed timestamps are ignored",
			history: []models.Movement{
				{FromColumn: "list1", ToColumn: "trash", Timestamp: "yesterday"},
				{FromColumn: "trash", ToColumn: "list1", Timestamp: "not a time"},
			},
			check: func(t *testing.T, p Pattern) {
				assert.Zero(t, p.ForwardMovements)
				assert.Zero(t, p.BackwardMovements)
				assert.False(t, p.StuckInColumn)
				assert.Equal(t, PatternSteadyProgress, p.Pattern)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, AnalyzePattern(tt.history, now))
		})
	}
}

func session(start time.Time, minutes int) models.StudySession {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return models.StudySession{StartTime: start, EndTime: &end}
}

func TestAnalyzeStudyTime(t *testing.T) {
	t.Parallel()

	t.Run("no sessions", func(t *testing.T) {
		st := AnalyzeStudyTime(nil)
		assert.Equal(t, StudyNoData, st.StudyPattern)
		assert.Equal(t, "0 minutes", st.TotalTimeFormatted)
	})

	t.Run("running sessions do not count", func(t *testing.T) {
		st := AnalyzeStudyTime([]models.StudySession{{StartTime: now}})
		assert.Equal(t, 1, st.TotalSessions)
		assert.Zero(t, st.CompletedSessions)
		assert.Equal(t, StudyNoData, st.StudyPattern)
	})

	t.Run("beginner", func(t *testing.T) {
		st := AnalyzeStudyTime([]models.StudySession{session(now, 5), session(now, 90)})
		assert.Equal(t, StudyBeginner, st.StudyPattern)
		assert.InDelta(t, 95, st.TotalTimeMinutes, 0.001)
		assert.InDelta(t, 47.5, st.AverageSessionTime, 0.001)
		assert.InDelta(t, 90, st.LongestSession, 0.001)
		assert.InDelta(t, 5, st.ShortestSession, 0.001)
		assert.Equal(t, "1 hour 35 minutes", st.TotalTimeFormatted)
	})

	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"short sessions", 10, StudyShortSessions},
		{"long sessions", 75, StudyLongSessions},
		{"regular", 30, StudyRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []models.StudySession
			for i := 0; i < 4; i++ {
				sessions = append(sessions, session(now, tt.minutes))
			}
			assert.Equal(t, tt.want, AnalyzeStudyTime(sessions).StudyPattern)
		})
	}

	t.Run("most productive hour is shifted to local time", func(t *testing.T) {
		at := func(hour int) time.Time { return time.Date(2024, 5, 1, hour, 0, 0, 0, time.UTC) }
		st := AnalyzeStudyTime([]models.StudySession{
			session(at(2), 20),
			session(at(2), 20),
			session(at(20), 20),
		})
		assert.Equal(t, 9, st.MostProductiveHour)
		assert.Equal(t, 2, st.ProductiveHours[9])
		assert.Equal(t, 1, st.ProductiveHours[3])
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "45 minutes", FormatDuration(44.6))
	assert.Equal(t, "2 hours", FormatDuration(120))
	assert.Equal(t, "1 hour 5 minutes", FormatDuration(65.4))
	assert.Equal(t, "1 hour 30 minutes", FormatDuration(90))
	assert.Equal(t, "1 hour", FormatDuration(60))
	assert.Equal(t, "2 hours 30 minutes", FormatDuration(150))
}

func TestAnalyzeComplexity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		difficulty, priority string
		complexity string
		attention  bool
		estimate   string
	}{
		{"hard", "high", ComplexityVeryHigh, true, "2-4 hours"},
		{"medium", "high", ComplexityHigh, true, "1-2 hours"},
		{"medium", "medium", ComplexityHigh, true, "1-2 hours"},
		{"easy", "low", ComplexityLow, false, "30-60 minutes"},
		{"easy", "high", ComplexityMedium, false, "30-60 minutes"},
		{"hard", "low", ComplexityMedium, false, "2-4 hours"},
		{"", "", ComplexityHigh, true, "1-2 hours"},
		{"HARD", "High", ComplexityVeryHigh, true, "2-4 hours"},
		{"expert", "critical", ComplexityHigh, true, "2-4 hours"},
		{"Expert", "low", ComplexityMedium, false, "2-4 hours"},
	}
	for _, tt := range tests {
		c := AnalyzeComplexity(models.Card{Difficulty: tt.difficulty, Priority: tt.priority})
		assert.Equal(t, tt.complexity, c.Complexity, "%s/%s", tt.difficulty, tt.priority)
		assert.Equal(t, tt.attention, c.NeedsAttention, "%s/%s", tt.difficulty, tt.priority)
		assert.Equal(t, tt.estimate, c.EstimatedTime, "%s/%s", tt.difficulty, tt.priority)
	}

	c := AnalyzeComplexity(models.Card{Difficulty: " Expert ", Priority: "CRITICAL"})
	assert.Equal(t, "expert", c.Difficulty)
	assert.Equal(t, "critical", c.Priority)
	assert.Equal(t, 2, c.DifficultyLevel)
	assert.Equal(t, 2, c.PriorityLevel)
}

func TestAnalyzeColumnMove(t *testing.T) {
	t.Parallel()

	cm := AnalyzeColumnMove("list1", "list2")
	assert.Equal(t, Forward, cm.MovementType)
	assert.Equal(t, "planning_to_monitoring", cm.Phase)
	assert.True(t, cm.IsMilestone)
	assert.Equal(t, "Planning (To Do)", cm.FromColumnName)
	assert.Equal(t, "Monitoring (In Progress)", cm.ToColumnName)

	cm = AnalyzeColumnMove("list3", "list4")
	assert.True(t, cm.IsMilestone)

	cm = AnalyzeColumnMove("list2", "list3")
	assert.False(t, cm.IsMilestone)
	assert.Equal(t, "monitoring_to_controlling", cm.Phase)

	cm = AnalyzeColumnMove("list4", "list1")
	assert.Equal(t, Backward, cm.MovementType)
	assert.Equal(t, PhaseOther, cm.Phase)
	assert.False(t, cm.IsMilestone)

	cm = AnalyzeColumnMove("list1", "somewhere")
	assert.Equal(t, Unknown, cm.MovementType)
	assert.Equal(t, "somewhere", cm.ToColumnName)
}

func TestMilestonesAreExactlyStartAndComplete(t *testing.T) {
	t.Parallel()

	var milestones []Transition
	for tr, info := range Transitions {
		if info.Milestone {
			milestones = append(milestones, tr)
		}
	}
	require.Len(t, milestones, 2)
	assert.ElementsMatch(t, []Transition{{List1, List2}, {List3, List4}}, milestones)
}
