// Package movement classifies card movements between board columns and the
// study behaviour recorded against a card.
package movement

// Column identifies a board list. The declaration order is the board order.
type Column string

const (
	Initial Column = "initial"
	List1   Column = "list1"
	List2   Column = "list2"
	List3   Column = "list3"
	List4   Column = "list4"
)

// Order is the left-to-right order of the board columns.
var Order = []Column{Initial, List1, List2, List3, List4}

var displayNames = map[Column]string{
	Initial: "Backlog",
	List1:   "Planning (To Do)",
	List2:   "Monitoring (In Progress)",
	List3:   "Controlling (Review)",
	List4:   "Reflection (Done)",
}

// Index returns the position of c in Order, or -1 for an unknown column.
func (c Column) Index() int {
	for i, col := range Order {
		if col == c {
			return i
		}
	}
	return -1
}

// DisplayName falls back to the raw id for unknown columns.
func (c Column) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
	Same     Direction = "same"
	Unknown  Direction = "unknown"
)

// DirectionOf compares the board positions of two columns.
func DirectionOf(from, to Column) Direction {
	fromIdx, toIdx := from.Index(), to.Index()
	switch {
	case fromIdx == -1 || toIdx == -1:
		return Unknown
	case toIdx > fromIdx:
		return Forward
	case toIdx < fromIdx:
		return Backward
	default:
		return Same
	}
}

// Transition is an ordered (from, to) column pair.
type Transition struct {
	From Column
	To   Column
}

// TransitionInfo describes a known transition. ResponseType is empty for
// transitions that do not pick a chatbot response on their own.
type TransitionInfo struct {
	Phase        string
	Milestone    bool
	ResponseType string
}

const PhaseOther = "other"

// Transitions is the table of every named column transition.
var Transitions = map[Transition]TransitionInfo{
	{Initial, List1}: {Phase: "backlog_to_planning"},
	{List1, List2}:   {Phase: "planning_to_monitoring", Milestone: true, ResponseType: "start_task"},
	{List2, List3}:   {Phase: "monitoring_to_controlling", ResponseType: "review_task"},
	{List3, List4}:   {Phase: "controlling_to_reflection", Milestone: true, ResponseType: "complete_task"},
	{List2, List1}:   {Phase: "monitoring_to_planning", ResponseType: "step_back_to_planning"},
	{List3, List2}:   {Phase: "controlling_to_monitoring", ResponseType: "step_back_to_monitoring"},
	{List4, List3}:   {Phase: "reflection_to_controlling", ResponseType: "step_back_to_controlling"},
}

// Lookup returns the table entry for from->to.
func Lookup(from, to Column) (TransitionInfo, bool) {
	info, ok := Transitions[Transition{From: from, To: to}]
	return info, ok
}
