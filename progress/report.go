// Package progress aggregates a board into completion and grade statistics.
package progress

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/andrewpaige1/srlboard-api/models"
)

// DoneListTitle is the only list whose cards count as done. The match is exact.
const DoneListTitle = "Reflection (Done)"

const topStrategyCount = 3

type Report struct {
	TotalCards         int                      `json:"total_cards"`
	DoneCards          int                      `json:"done_cards"`
	ProgressPercentage float64                  `json:"progress_percentage"`
	ListReport         map[string]int           `json:"list_report"`
	StrategyStats      map[string]StrategyStats `json:"strategy_stats"`
	CourseStats        map[string]CourseStats   `json:"course_stats"`
	TopStrategies      []TopStrategy            `json:"top_strategies"`
}

type StrategyStats struct {
	PreTest  Quartiles `json:"pre_test"`
	PostTest Quartiles `json:"post_test"`
}

type Quartiles struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

type CourseStats struct {
	PreTest  Average `json:"pre_test"`
	PostTest Average `json:"post_test"`
}

type Average struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

type TopStrategy struct {
	Strategy   string `json:"strategy"`
	Count      int    `json:"count"`
	MostUsedIn string `json:"most_used_in"`
}

type grades struct {
	pre, post []float64
}

// usage counts strategy use per course, remembering first-seen order.
type usage struct {
	strategy string
	total    int
	courses  []string
	counts   map[string]int
}

// Build computes the progress report for a board. The board is not modified.
func Build(board *models.Board) Report {
	r := Report{
		ListReport:    map[string]int{},
		StrategyStats: map[string]StrategyStats{},
		CourseStats:   map[string]CourseStats{},
		TopStrategies: []TopStrategy{},
	}

	var active []models.Card
	for _, list := range board.Data() {
		count := 0
		for _, card := range list.Cards {
			if card.Active() {
				count++
				active = append(active, card)
			}
		}
		r.ListReport[list.Title] += count
		r.TotalCards += count
		if list.Title == DoneListTitle {
			r.DoneCards += count
		}
	}
	if r.TotalCards > 0 {
		r.ProgressPercentage = float64(r.DoneCards) / float64(r.TotalCards) * 100
	}

	byStrategy := map[string]*grades{}
	byCourse := map[string]*grades{}
	var usages []*usage
	usageIdx := map[string]*usage{}

	for _, card := range active {
		strategy := strings.TrimSpace(card.LearningStrategy)
		course := card.CourseName()

		if strategy != "" && course != "" {
			u, ok := usageIdx[strategy]
			if !ok {
				u = &usage{strategy: strategy, counts: map[string]int{}}
				usageIdx[strategy] = u
				usages = append(usages, u)
			}
			if _, seen := u.counts[course]; !seen {
				u.courses = append(u.courses, course)
			}
			u.counts[course]++
			u.total++
		}

		var sg, cg *grades
		if strategy != "" {
			if sg = byStrategy[strategy]; sg == nil {
				sg = &grades{}
				byStrategy[strategy] = sg
			}
		}
		if course != "" {
			if cg = byCourse[course]; cg == nil {
				cg = &grades{}
				byCourse[course] = cg
			}
		}

		if g, ok := parseGrade(card.PreTestGrade); ok {
			if sg != nil {
				sg.pre = append(sg.pre, g)
			}
			if cg != nil {
				cg.pre = append(cg.pre, g)
			}
		}
		if g, ok := parseGrade(card.PostTestGrade); ok {
			if sg != nil {
				sg.post = append(sg.post, g)
			}
			if cg != nil {
				cg.post = append(cg.post, g)
			}
		}
	}

	for name, g := range byStrategy {
		r.StrategyStats[name] = StrategyStats{
			PreTest:  ComputeQuartiles(g.pre),
			PostTest: ComputeQuartiles(g.post),
		}
	}
	for name, g := range byCourse {
		r.CourseStats[name] = CourseStats{
			PreTest:  ComputeAverage(g.pre),
			PostTest: ComputeAverage(g.post),
		}
	}

	r.TopStrategies = topStrategies(usages)
	return r
}

// parseGrade skips absent, blank and non-numeric grades. Numbers and numeric
// strings both count.
func parseGrade(raw *models.Grade) (float64, bool) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, false
	}
	g, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}
	return g, true
}

// ComputeQuartiles picks quartiles by floor index into the sorted grades
// (count/4, count/2, 3*count/4) without interpolation. Fewer than four grades
// collapse every quartile to the minimum. The input slice is not reordered.
func ComputeQuartiles(values []float64) Quartiles {
	if len(values) == 0 {
		return Quartiles{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	q := Quartiles{Min: sorted[0], Max: sorted[n-1], Count: n}
	if n >= 4 {
		q.Q1 = sorted[n/4]
		q.Median = sorted[n/2]
		q.Q3 = sorted[3*n/4]
	} else {
		q.Q1, q.Median, q.Q3 = q.Min, q.Min, q.Min
	}
	return q
}

// ComputeAverage rounds the mean to two decimals.
func ComputeAverage(values []float64) Average {
	if len(values) == 0 {
		return Average{}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Average{
		Avg:   math.Round(sum/float64(len(values))*100) / 100,
		Count: len(values),
	}
}

func topStrategies(usages []*usage) []TopStrategy {
	top := make([]TopStrategy, 0, len(usages))
	for _, u := range usages {
		best := u.courses[0]
		for _, c := range u.courses[1:] {
			if u.counts[c] > u.counts[best] {
				best = c
			}
		}
		top = append(top, TopStrategy{Strategy: u.strategy, Count: u.total, MostUsedIn: best})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topStrategyCount {
		top = top[:topStrategyCount]
	}
	return top
}
