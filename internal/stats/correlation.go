package stats

import (
	"math"
	"sort"
	"time"

	"zen-tracker-go/internal/models"
)

// DayData joins one calendar day's emotion log with that day's total
// meditation minutes (0 when no session was logged).
type DayData struct {
	Date              string  `json:"date"`
	PositiveCount     int     `json:"positiveCount"`
	NegativeCount     int     `json:"negativeCount"`
	PNRatio           float64 `json:"pnRatio"`
	MeditationMinutes int     `json:"meditationMinutes"`
}

// SideStats are the per-set means for the with/without meditation split.
type SideStats struct {
	AvgPositive float64 `json:"avgPositive"`
	AvgNegative float64 `json:"avgNegative"`
	PNRatio     float64 `json:"pnRatio"`
}

// DurationImpact is the mean P/N ratio for one meditation-duration bucket.
type DurationImpact struct {
	Range   string  `json:"range"`
	Count   int     `json:"count"`
	PNRatio float64 `json:"pnRatio"`
}

// CorrelationInsights is the correlation endpoint payload.
type CorrelationInsights struct {
	CorrelationScore     float64          `json:"correlationScore"`
	MeditationDays       int              `json:"meditationDays"`
	EmotionTrackedDays   int              `json:"emotionTrackedDays"`
	AvgMeditationMinutes int              `json:"avgMeditationMinutes"`
	AvgPNRatio           float64          `json:"avgPNRatio"`
	WithMeditation       SideStats        `json:"withMeditation"`
	WithoutMeditation    SideStats        `json:"withoutMeditation"`
	DurationImpact       []DurationImpact `json:"durationImpact"`
	BestDays             []DayData        `json:"bestDays"`
	Message              string           `json:"message"`
}

var durationBuckets = []struct {
	min, max int
	label    string
}{
	{0, 10, "0-10 min"},
	{10, 20, "10-20 min"},
	{20, 30, "20-30 min"},
	{30, 999, "30+ min"},
}

// dayKey collapses a timestamp to its UTC calendar date, so two sessions on
// the same day with different recorded sub-times still merge.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Correlate joins meditation sessions with emotion logs by calendar date and
// computes the comparative statistics for the insights endpoint.
func Correlate(sessions []models.MeditationSession, emotionLogs []models.EmotionLog) CorrelationInsights {
	minutesByDate := make(map[string]int)
	totalMinutes := 0
	for _, s := range sessions {
		minutesByDate[dayKey(s.Date)] += s.Duration
		totalMinutes += s.Duration
	}

	var withMeditation, withoutMeditation, withBoth []DayData
	for _, log := range emotionLogs {
		key := dayKey(log.Date)
		day := DayData{
			Date:          key,
			PositiveCount: log.PositiveCount,
			NegativeCount: log.NegativeCount,
			PNRatio:       log.PNRatio,
		}
		if minutes, ok := minutesByDate[key]; ok {
			day.MeditationMinutes = minutes
			withBoth = append(withBoth, day)
			withMeditation = append(withMeditation, day)
		} else {
			withoutMeditation = append(withoutMeditation, day)
		}
	}

	res := CorrelationInsights{
		MeditationDays:     len(minutesByDate),
		EmotionTrackedDays: len(emotionLogs),
		WithMeditation:     sideStats(withMeditation),
		WithoutMeditation:  sideStats(withoutMeditation),
		DurationImpact:     []DurationImpact{},
		BestDays:           []DayData{},
	}
	if len(sessions) > 0 {
		res.AvgMeditationMinutes = int(math.Round(float64(totalMinutes) / float64(len(sessions))))
	}
	res.AvgPNRatio = avgField(append(append([]DayData{}, withMeditation...), withoutMeditation...), ratioOf)

	// Neutral default when either side is empty, avoids a biased score.
	res.CorrelationScore = 0.5
	if len(withMeditation) > 0 && len(withoutMeditation) > 0 {
		res.CorrelationScore = clamp01(res.WithMeditation.PNRatio - res.WithoutMeditation.PNRatio + 0.5)
	}

	for _, b := range durationBuckets {
		var inRange []DayData
		for _, d := range withBoth {
			if d.MeditationMinutes >= b.min && d.MeditationMinutes < b.max {
				inRange = append(inRange, d)
			}
		}
		if len(inRange) == 0 {
			continue
		}
		res.DurationImpact = append(res.DurationImpact, DurationImpact{
			Range:   b.label,
			Count:   len(inRange),
			PNRatio: avgField(inRange, ratioOf),
		})
	}

	best := append([]DayData{}, withBoth...)
	sort.Slice(best, func(i, j int) bool { return best[i].PNRatio > best[j].PNRatio })
	if len(best) > 5 {
		best = best[:5]
	}
	res.BestDays = best

	switch {
	case res.CorrelationScore >= 0.7:
		res.Message = "Excellent! Your meditation practice shows a strong positive impact on your emotional well-being. Keep up the great work!"
	case res.CorrelationScore >= 0.4:
		res.Message = "Good progress! There's a moderate positive correlation between your meditation and emotions. Consider increasing frequency or duration."
	default:
		res.Message = "Your meditation journey is just beginning. With consistent practice, you may see greater emotional benefits over time."
	}

	return res
}

func ratioOf(d DayData) float64 { return d.PNRatio }

func avgField(days []DayData, field func(DayData) float64) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range days {
		sum += field(d)
	}
	return sum / float64(len(days))
}

func sideStats(days []DayData) SideStats {
	return SideStats{
		AvgPositive: avgField(days, func(d DayData) float64 { return float64(d.PositiveCount) }),
		AvgNegative: avgField(days, func(d DayData) float64 { return float64(d.NegativeCount) }),
		PNRatio:     avgField(days, ratioOf),
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
