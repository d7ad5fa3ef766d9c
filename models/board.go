package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Board is a user's kanban board. The lists are stored as one JSON document.
type Board struct {
	ID        string                     `gorm:"primaryKey;size:32" json:"_id"`
	UserID    uint                       `gorm:"not null;index" json:"user_id"`
	Name      string                     `gorm:"not null;size:200" json:"name"`
	Lists     datatypes.JSONType[[]List] `json:"lists"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// List is one column of a board.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`

	Extra map[string]json.RawMessage `json:"-"`
}

type Card struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	SubTitle         string     `json:"sub_title,omitempty"`
	Description      string     `json:"description,omitempty"`
	Difficulty       string     `json:"difficulty,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	LearningStrategy string     `json:"learning_strategy,omitempty"`
	PreTestGrade     *Grade     `json:"pre_test_grade,omitempty"`
	PostTestGrade    *Grade     `json:"post_test_grade,omitempty"`
	Rating           float64    `json:"rating,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Archived         bool       `json:"archived,omitempty"`
	Deleted          bool       `json:"deleted,omitempty"`
	CreatedAt        string     `json:"created_at,omitempty"`
	ColumnMovements  []Movement `json:"column_movements,omitempty"`

	// Extra holds card fields the API does not read, such as checklists,
	// links and material.
	Extra map[string]json.RawMessage `json:"-"`
}

// Movement records a card moving between two lists. Movements are
// append-only and ordered by timestamp.
type Movement struct {
	FromColumn string `json:"fromColumn"`
	ToColumn   string `json:"toColumn"`
	Timestamp  string `json:"timestamp"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Active reports whether the card counts towards board statistics.
func (c Card) Active() bool {
	return !c.Archived && !c.Deleted
}

// CourseName is the part of the title before the first '['.
func (c Card) CourseName() string {
	title, _, _ := strings.Cut(c.Title, "[")
	return strings.TrimSpace(title)
}

// Time parses the movement timestamp. Malformed timestamps report false.
func (m Movement) Time() (time.Time, bool) {
	return ParseTimestamp(m.Timestamp)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp accepts RFC 3339 and the zone-less ISO layouts the web client
// and older records use. Zone-less values are read as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Data returns the board lists, never nil.
func (b *Board) Data() []List {
	lists := b.Lists.Data()
	if lists == nil {
		return []List{}
	}
	return lists
}

// FindCard looks a card up by id across every list.
func (b *Board) FindCard(cardID string) (Card, bool) {
	for _, list := range b.Data() {
		for _, card := range list.Cards {
			if card.ID == cardID {
				return card, true
			}
		}
	}
	return Card{}, false
}

// InitialLists is the layout every new board starts with.
func InitialLists() []List {
	return []List{
		{ID: "list1", Title: "Planning (To Do)", Cards: []Card{}},
		{ID: "list2", Title: "Monitoring (In Progress)", Cards: []Card{}},
		{ID: "list3", Title: "Controlling (Review)", Cards: []Card{}},
		{ID: "list4", Title: "Reflection (Done)", Cards: []Card{}},
	}
}
