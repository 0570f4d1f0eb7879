package stats

import (
	"math"
	"sort"
	"time"

	"zen-tracker-go/internal/models"
)

const pathCount = 8

// PathFollowCount is one row of the per-path frequency table.
type PathFollowCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// PathTrend is the per-day projection returned in analytics trends.
type PathTrend struct {
	Date               time.Time `json:"date"`
	CompletedCount     int       `json:"completedCount"`
	ProgressPercentage int       `json:"progressPercentage"`
}

// PathAnalytics summarizes Eightfold Path logs over a trailing window.
type PathAnalytics struct {
	TotalDays         int               `json:"totalDays"`
	AverageCompletion float64           `json:"averageCompletion"`
	PerfectDays       int               `json:"perfectDays"`
	MostFollowedPaths []PathFollowCount `json:"mostFollowedPaths"`
	Trends            []PathTrend       `json:"trends"`
}

// PathProgress converts a completed-paths count into a rounded percentage
// of the eight paths.
func PathProgress(completed int) int {
	return int(math.Round(float64(completed) / pathCount * 100))
}

// AnalyzePaths aggregates path logs into window analytics. Logs are expected
// newest-first; trends keep the 30 most recent entries.
func AnalyzePaths(logs []models.EightfoldPathLog) PathAnalytics {
	res := PathAnalytics{
		MostFollowedPaths: []PathFollowCount{},
		Trends:            []PathTrend{},
	}
	if len(logs) == 0 {
		return res
	}

	res.TotalDays = len(logs)

	totalCompleted := 0
	followed := make(map[string]int)
	for _, log := range logs {
		totalCompleted += log.CompletedCount
		if log.CompletedCount == pathCount {
			res.PerfectDays++
		}
		for _, p := range log.Paths {
			followed[p.Path]++
		}
	}
	avg := float64(totalCompleted) / float64(res.TotalDays*pathCount) * 100
	res.AverageCompletion = math.Round(avg*10) / 10

	for path, count := range followed {
		res.MostFollowedPaths = append(res.MostFollowedPaths, PathFollowCount{Path: path, Count: count})
	}
	sort.Slice(res.MostFollowedPaths, func(i, j int) bool {
		return res.MostFollowedPaths[i].Count > res.MostFollowedPaths[j].Count
	})

	trendLogs := logs
	if len(trendLogs) > 30 {
		trendLogs = trendLogs[:30]
	}
	for _, log := range trendLogs {
		res.Trends = append(res.Trends, PathTrend{
			Date:               log.Date,
			CompletedCount:     log.CompletedCount,
			ProgressPercentage: log.ProgressPercentage,
		})
	}

	return res
}
