package progress

import (
	"encoding/json"
	"testing"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func grade(s string) *models.Grade { return models.NewGrade(s) }

func newBoard(lists ...models.List) *models.Board {
	return &models.Board{ID: "b1", Lists: datatypes.NewJSONType(lists)}
}

func TestBuild_EmptyBoard(t *testing.T) {
	t.Parallel()

	r := Build(newBoard(models.InitialLists()...))
	assert.Zero(t, r.TotalCards)
	assert.Zero(t, r.DoneCards)
	assert.Zero(t, r.ProgressPercentage)
	assert.Len(t, r.ListReport, 4)
	assert.Empty(t, r.TopStrategies)

	r = Build(&models.Board{})
	assert.Zero(t, r.ProgressPercentage)
	assert.Empty(t, r.ListReport)
}

func TestBuild_CountsActiveCards(t *testing.T) {
	t.Parallel()

	board := newBoard(
		models.List{ID: "list1", Title: "Planning (To Do)", Cards: []models.Card{
			{ID: "c1", Title: "Algebra [Week 1]"},
			{ID: "c2", Title: "Algebra [Week 2]", Archived: true},
			{ID: "c3", Title: "Physics", Deleted: true},
		}},
		models.List{ID: "list2", Title: "Monitoring (In Progress)", Cards: []models.Card{
			{ID: "c4", Title: "Physics"},
		}},
		models.List{ID: "list4", Title: "Reflection (Done)", Cards: []models.Card{
			{ID: "c5", Title: "Chemistry"},
			{ID: "c6", Title: "Biology"},
		}},
	)

	r := Build(board)
	assert.Equal(t, 4, r.TotalCards)
	assert.Equal(t, 2, r.DoneCards)
	assert.InDelta(t, 50.0, r.ProgressPercentage, 1e-9)
	assert.Equal(t, map[string]int{
		"Planning (To Do)":         1,
		"Monitoring (In Progress)": 1,
		"Reflection (Done)":        2,
	}, r.ListReport)
}

func TestBuild_DoneRequiresExactTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		done  int
	}{
		{"Reflection (Done)", 1},
		{"reflection (done)", 0},
		{"Done", 0},
		{"DONE!", 0},
	}
	for _, tt := range tests {
		board := newBoard(
			models.List{ID: "list1", Title: "Planning (To Do)", Cards: []models.Card{{ID: "a", Title: "A"}}},
			models.List{ID: "list4", Title: tt.title, Cards: []models.Card{{ID: "b", Title: "B"}}},
		)
		r := Build(board)
		assert.Equal(t, tt.done, r.DoneCards, tt.title)
		assert.GreaterOrEqual(t, r.ProgressPercentage, 0.0)
		assert.LessOrEqual(t, r.ProgressPercentage, 100.0)
	}
}

func TestComputeQuartiles(t *testing.T) {
	t.Parallel()

	q := ComputeQuartiles([]float64{100, 50, 90, 70})
	assert.Equal(t, Quartiles{Min: 50, Q1: 70, Median: 90, Q3: 100, Max: 100, Count: 4}, q)

	q = ComputeQuartiles([]float64{80})
	assert.Equal(t, Quartiles{Min: 80, Q1: 80, Median: 80, Q3: 80, Max: 80, Count: 1}, q)

	q = ComputeQuartiles([]float64{60, 40, 90})
	assert.Equal(t, Quartiles{Min: 40, Q1: 40, Median: 40, Q3: 40, Max: 90, Count: 3}, q)

	// index 7/4=1, 7/2=3, 21/4=5
	q = ComputeQuartiles([]float64{1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, 2.0, q.Q1)
	assert.Equal(t, 4.0, q.Median)
	assert.Equal(t, 6.0, q.Q3)

	assert.Equal(t, Quartiles{}, ComputeQuartiles(nil))

	in := []float64{3, 1, 2}
	ComputeQuartiles(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestComputeAverage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Average{Avg: 66.67, Count: 3}, ComputeAverage([]float64{60, 70, 70}))
	assert.Equal(t, Average{}, ComputeAverage(nil))
}

func TestBuild_GradeStatistics(t *testing.T) {
	t.Parallel()

	board := newBoard(
		models.List{ID: "list1", Title: "Planning (To Do)", Cards: []models.Card{
			{ID: "1", Title: "Algebra [Week 1]", LearningStrategy: "Pomodoro", PreTestGrade: grade("50"), PostTestGrade: grade("80")},
			{ID: "2", Title: "Algebra [Week 2]", LearningStrategy: "Pomodoro", PreTestGrade: grade(" 70 "), PostTestGrade: grade("")},
			{ID: "3", Title: "Physics", LearningStrategy: "Pomodoro", PreTestGrade: grade("90"), PostTestGrade: grade("n/a")},
			{ID: "4", Title: "Physics", LearningStrategy: "Pomodoro", PreTestGrade: grade("100")},
			{ID: "5", Title: "Physics [Lab]", LearningStrategy: "Mind Map", PreTestGrade: grade("abc")},
			{ID: "6", Title: "Chemistry", PreTestGrade: grade("64")},
		}},
	)

	r := Build(board)

	require.Contains(t, r.StrategyStats, "Pomodoro")
	pomodoro := r.StrategyStats["Pomodoro"]
	assert.Equal(t, Quartiles{Min: 50, Q1: 70, Median: 90, Q3: 100, Max: 100, Count: 4}, pomodoro.PreTest)
	assert.Equal(t, Quartiles{Min: 80, Q1: 80, Median: 80, Q3: 80, Max: 80, Count: 1}, pomodoro.PostTest)

	require.Contains(t, r.StrategyStats, "Mind Map")
	assert.Zero(t, r.StrategyStats["Mind Map"].PreTest.Count)

	assert.Equal(t, Average{Avg: 60, Count: 2}, r.CourseStats["Algebra"].PreTest)
	assert.Equal(t, Average{Avg: 80, Count: 1}, r.CourseStats["Algebra"].PostTest)
	assert.Equal(t, Average{Avg: 95, Count: 2}, r.CourseStats["Physics"].PreTest)
	assert.Equal(t, Average{Avg: 64, Count: 1}, r.CourseStats["Chemistry"].PreTest)
	assert.NotContains(t, r.StrategyStats, "")
}

func TestBuild_TopStrategies(t *testing.T) {
	t.Parallel()

	card := func(id, title, strategy string) models.Card {
		return models.Card{ID: id, Title: title, LearningStrategy: strategy}
	}
	board := newBoard(models.List{ID: "list1", Title: "Planning (To Do)", Cards: []models.Card{
		card("1", "Algebra [1]", "Feynman"),
		card("2", "Physics [1]", "Feynman"),
		card("3", "Chemistry", "Pomodoro"),
		card("4", "Chemistry", "Pomodoro"),
		card("5", "Biology", "Pomodoro"),
		card("6", "Algebra", "Mind Map"),
		card("7", "Algebra", "Flashcards"),
		card("8", "Physics", "Flashcards"),
		card("9", "History", "Feynman"),
		card("10", "History", "Recall"),
	}})

	r := Build(board)
	require.Len(t, r.TopStrategies, 3)
	assert.Equal(t, TopStrategy{Strategy: "Feynman", Count: 3, MostUsedIn: "Algebra"}, r.TopStrategies[0])
	assert.Equal(t, TopStrategy{Strategy: "Pomodoro", Count: 3, MostUsedIn: "Chemistry"}, r.TopStrategies[1])
	assert.Equal(t, TopStrategy{Strategy: "Flashcards", Count: 2, MostUsedIn: "Algebra"}, r.TopStrategies[2])
}

func TestCourseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Algebra", models.Card{Title: "Algebra [Week 3]"}.CourseName())
	assert.Equal(t, "Physics", models.Card{Title: "Physics"}.CourseName())
	assert.Equal(t, "", models.Card{Title: "[Intro]"}.CourseName())
	assert.Equal(t, "Data Structures", models.Card{Title: "  Data Structures [a] [b]"}.CourseName())
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	board := newBoard(models.List{ID: "list4", Title: "Reflection (Done)", Cards: []models.Card{
		{ID: "1", Title: "Algebra", LearningStrategy: "Recall", PreTestGrade: grade("90")},
		{ID: "2", Title: "Algebra", LearningStrategy: "Recall", PreTestGrade: grade("10")},
	}})

	first := Build(board)
	second := Build(board)
	assert.Equal(t, first, second)
	assert.Equal(t, "90", board.Data()[0].Cards[0].PreTestGrade.String())
}

func TestBuild_NumericGrades(t *testing.T) {
	t.Parallel()

	var cards []models.Card
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"1","title":"Algebra","learning_strategy":"Recall","pre_test_grade":60,"post_test_grade":"85"},
		{"id":"2","title":"Algebra","learning_strategy":"Recall","pre_test_grade":true,"post_test_grade":75.5}
	]`), &cards))

	r := Build(newBoard(models.List{ID: "list1", Title: "Planning (To Do)", Cards: cards}))
	require.Contains(t, r.CourseStats, "Algebra")
	assert.Equal(t, 60.0, r.CourseStats["Algebra"].PreTest.Avg)
	assert.Equal(t, 1, r.CourseStats["Algebra"].PreTest.Count)
	assert.Equal(t, 2, r.CourseStats["Algebra"].PostTest.Count)
}
