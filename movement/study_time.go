package movement

import (
	"fmt"
	"math"

	"github.com/andrewpaige1/srlboard-api/models"
)

const (
	StudyNoData        = "no_data"
	StudyBeginner      = "beginner"
	StudyShortSessions = "short_sessions"
	StudyLongSessions  = "long_sessions"
	StudyRegular       = "regular"
)

// Session start hours are bucketed in UTC+7, the timezone the boards are used in.
const localHourOffset = 7

type StudyTime struct {
	TotalSessions      int     `json:"total_sessions"`
	CompletedSessions  int     `json:"completed_sessions"`
	TotalTimeMinutes   float64 `json:"total_time_minutes"`
	TotalTimeFormatted string  `json:"total_time_formatted"`
	AverageSessionTime float64 `json:"average_session_time"`
	LongestSession     float64 `json:"longest_session"`
	ShortestSession    float64 `json:"shortest_session"`
	StudyPattern       string  `json:"study_pattern"`
	ProductiveHours    [24]int `json:"productive_hours"`
	MostProductiveHour int     `json:"most_productive_hour"`
}

// AnalyzeStudyTime summarizes the sessions recorded for one card. Sessions
// that are still running or have a non-positive duration are counted in
// TotalSessions but contribute nothing else.
func AnalyzeStudyTime(sessions []models.StudySession) StudyTime {
	st := StudyTime{TotalSessions: len(sessions)}

	for _, s := range sessions {
		d, ok := s.Duration()
		if !ok || d <= 0 {
			continue
		}
		minutes := d.Minutes()
		if st.CompletedSessions == 0 || minutes > st.LongestSession {
			st.LongestSession = minutes
		}
		if st.CompletedSessions == 0 || minutes < st.ShortestSession {
			st.ShortestSession = minutes
		}
		st.CompletedSessions++
		st.TotalTimeMinutes += minutes
		st.ProductiveHours[(s.StartTime.UTC().Hour()+localHourOffset)%24]++
	}

	if st.CompletedSessions > 0 {
		st.AverageSessionTime = round2(st.TotalTimeMinutes / float64(st.CompletedSessions))
	}
	st.TotalTimeFormatted = FormatDuration(st.TotalTimeMinutes)

	for hour, count := range st.ProductiveHours {
		if count > st.ProductiveHours[st.MostProductiveHour] {
			st.MostProductiveHour = hour
		}
	}

	switch {
	case st.CompletedSessions == 0:
		st.StudyPattern = StudyNoData
	case st.CompletedSessions <= 3:
		st.StudyPattern = StudyBeginner
	case st.AverageSessionTime < 15:
		st.StudyPattern = StudyShortSessions
	case st.AverageSessionTime > 60:
		st.StudyPattern = StudyLongSessions
	default:
		st.StudyPattern = StudyRegular
	}
	return st
}

// FormatDuration renders minutes as "25 minutes", "2 hours" or "1 hour 30 minutes"
// style text for chatbot messages.
func FormatDuration(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", int(math.Round(minutes)))
	}
	hours := int(minutes) / 60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	rest := int(minutes) % 60
	if rest > 0 {
		return fmt.Sprintf("%d %s %d minutes", hours, unit, rest)
	}
	return fmt.Sprintf("%d %s", hours, unit)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
