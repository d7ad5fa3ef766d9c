package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCourseName(t *testing.T) {
	tests := map[string]string{
		"Algebra [Week 3]":  "Algebra",
		"Physics":           "Physics",
		"  Chem  [lab] [2]": "Chem",
		"[Only bracket]":    "",
	}
	for title, want := range tests {
		assert.Equal(t, want, Card{Title: title}.CourseName(), title)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	for _, s := range []string{
		"2025-03-01T10:30:00Z",
		"2025-03-01T12:30:00+02:00",
		"2025-03-01T10:30:00",
		"2025-03-01T10:30:00.000000",
	} {
		got, ok := ParseTimestamp(s)
		assert.True(t, ok, s)
		assert.True(t, want.Equal(got), s)
	}

	for _, s := range []string{"", "yesterday", "2025-13-01T00:00:00"} {
		_, ok := ParseTimestamp(s)
		assert.False(t, ok, s)
	}
}

func TestBoardFindCard(t *testing.T) {
	var empty Board
	assert.NotNil(t, empty.Data())
	_, ok := empty.FindCard("c1")
	assert.False(t, ok)

	lists := InitialLists()
	lists[2].Cards = []Card{{ID: "c1", Title: "Essay"}}
	board := Board{Lists: datatypes.NewJSONType(lists)}

	card, ok := board.FindCard("c1")
	assert.True(t, ok)
	assert.Equal(t, "Essay", card.Title)
}

func TestCardActive(t *testing.T) {
	assert.True(t, Card{}.Active())
	assert.False(t, Card{Archived: true}.Active())
	assert.False(t, Card{Deleted: true}.Active())
}

func TestListsKeepUnknownFields(t *testing.T) {
	in := `[{"id":"list1","title":"Planning (To Do)","color":"blue","cards":[{
		"id":"c1","title":"Algebra [W3]","course_code":"MATH101","status":"todo",
		"checklists":[{"text":"read ch. 3","done":false}],
		"links":[{"url":"https://example.com"}],"material":"Chapter 3",
		"updated_at":"2025-03-01T10:30:00Z","pre_test_grade":80,"post_test_grade":"92.5","rating":4.5,
		"column_movements":[{"_id":"m1","fromColumn":"list1","toColumn":"list2","timestamp":"2025-03-01T10:30:00Z"}]
	}]}]`

	var lists []List
	require.NoError(t, json.Unmarshal([]byte(in), &lists))
	require.Len(t, lists, 1)
	card := lists[0].Cards[0]
	assert.Equal(t, "Algebra [W3]", card.Title)
	assert.Equal(t, 4.5, card.Rating)
	assert.Equal(t, "80", card.PreTestGrade.String())
	assert.Equal(t, "92.5", card.PostTestGrade.String())
	assert.NotContains(t, card.Extra, "title")
	assert.Contains(t, card.Extra, "checklists")
	assert.Equal(t, "list2", card.ColumnMovements[0].ToColumn)

	out, err := json.Marshal(lists)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestGrade(t *testing.T) {
	var g *Grade
	assert.Equal(t, "", g.String())
	assert.Equal(t, "70", NewGrade("70").String())

	var card Card
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","pre_test_grade":{"score":1},"post_test_grade":null}`), &card))
	assert.Equal(t, `{"score":1}`, card.PreTestGrade.String())
	assert.Nil(t, card.PostTestGrade)

	out, err := json.Marshal(Card{ID: "c2", PreTestGrade: NewGrade("55")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c2","title":"","pre_test_grade":"55"}`, string(out))
}
