// Package stats reduces study history into dashboard figures.
package stats

import (
	"sort"

	"chronosdeck/internal/model"
)

// TotalsBySubject sums logged minutes per subject. It recomputes from
// scratch on every call; subjects with no logged time are absent from the
// result, not reported as zero.
func TotalsBySubject(sessions []*model.StudySession) map[string]int {
	totals := make(map[string]int)
	for _, s := range sessions {
		totals[s.Subject] += s.Duration
	}
	return totals
}

// SubjectTotal is one bar of the study-time chart.
type SubjectTotal struct {
	Subject string
	Minutes int
}

// SortedTotals returns the totals as a list ordered by minutes descending,
// subjects with equal time ordered by name for stable output.
func SortedTotals(totals map[string]int) []SubjectTotal {
	result := make([]SubjectTotal, 0, len(totals))
	for subject, minutes := range totals {
		result = append(result, SubjectTotal{Subject: subject, Minutes: minutes})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Subject < result[j].Subject
	})
	return result
}
