package stats

import (
	"math"
	"sort"
	"time"

	"zen-tracker-go/internal/models"
)

// EmotionCount is one row of the frequency table in the analytics response.
type EmotionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Type  string `json:"type"`
}

// EmotionTrend is the per-day projection returned in analytics trends.
type EmotionTrend struct {
	Date          time.Time `json:"date"`
	PNRatio       float64   `json:"pnRatio"`
	PositiveCount int       `json:"positiveCount"`
	NegativeCount int       `json:"negativeCount"`
}

// EmotionAnalytics summarizes a user's emotion logs over a trailing window.
type EmotionAnalytics struct {
	TotalDays        int            `json:"totalDays"`
	AveragePNRatio   float64        `json:"averagePNRatio"`
	TopEmotions      []EmotionCount `json:"topEmotions"`
	EmotionDiversity int            `json:"emotionDiversity"`
	PositiveDays     int            `json:"positiveDays"`
	NegativeDays     int            `json:"negativeDays"`
	Trends           []EmotionTrend `json:"trends"`
}

// SummarizeEmotions partitions a day's emotions by type. The ratio is
// positive/(positive+negative), 0 when nothing was logged.
func SummarizeEmotions(emotions []models.Emotion) (positive, negative int, ratio float64) {
	for _, e := range emotions {
		switch e.Type {
		case "positive":
			positive++
		case "negative":
			negative++
		}
	}
	if total := positive + negative; total > 0 {
		ratio = float64(positive) / float64(total)
	}
	return positive, negative, ratio
}

// AnalyzeEmotions aggregates emotion logs into window analytics. An empty
// window yields the zero result, not an error.
func AnalyzeEmotions(logs []models.EmotionLog) EmotionAnalytics {
	res := EmotionAnalytics{
		TopEmotions: []EmotionCount{},
		Trends:      []EmotionTrend{},
	}
	if len(logs) == 0 {
		return res
	}

	res.TotalDays = len(logs)

	var ratioSum float64
	counts := make(map[string]*EmotionCount)
	for _, log := range logs {
		ratioSum += log.PNRatio
		if log.PNRatio >= 0.5 {
			res.PositiveDays++
		} else {
			res.NegativeDays++
		}
		for _, e := range log.Emotions {
			c, ok := counts[e.Name]
			if !ok {
				c = &EmotionCount{Name: e.Name, Type: e.Type}
				counts[e.Name] = c
			}
			c.Count++
		}
		res.Trends = append(res.Trends, EmotionTrend{
			Date:          log.Date,
			PNRatio:       log.PNRatio,
			PositiveCount: log.PositiveCount,
			NegativeCount: log.NegativeCount,
		})
	}

	res.AveragePNRatio = math.Round(ratioSum/float64(res.TotalDays)*100) / 100
	res.EmotionDiversity = len(counts)

	for _, c := range counts {
		res.TopEmotions = append(res.TopEmotions, *c)
	}
	sort.Slice(res.TopEmotions, func(i, j int) bool {
		return res.TopEmotions[i].Count > res.TopEmotions[j].Count
	})
	if len(res.TopEmotions) > 10 {
		res.TopEmotions = res.TopEmotions[:10]
	}

	return res
}
