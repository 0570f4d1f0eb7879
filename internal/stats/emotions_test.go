package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"zen-tracker-go/internal/models"
)

func TestSummarizeEmotions(t *testing.T) {
	positive, negative, ratio := SummarizeEmotions([]models.Emotion{
		{Name: "joy", Type: "positive"},
		{Name: "calm", Type: "positive"},
		{Name: "gratitude", Type: "positive"},
		{Name: "anger", Type: "negative"},
	})
	require.Equal(t, 3, positive)
	require.Equal(t, 1, negative)
	require.Equal(t, 0.75, ratio)
}

func TestSummarizeEmotionsEmpty(t *testing.T) {
	positive, negative, ratio := SummarizeEmotions(nil)
	require.Zero(t, positive)
	require.Zero(t, negative)
	require.Zero(t, ratio)
}

func TestSummarizeEmotionsRatioBounds(t *testing.T) {
	cases := [][]models.Emotion{
		{{Name: "joy", Type: "positive"}},
		{{Name: "fear", Type: "negative"}},
		{{Name: "joy", Type: "positive"}, {Name: "fear", Type: "negative"}},
	}
	for _, emotions := range cases {
		_, _, ratio := SummarizeEmotions(emotions)
		require.GreaterOrEqual(t, ratio, 0.0)
		require.LessOrEqual(t, ratio, 1.0)
	}
}

func TestAnalyzeEmotionsEmptyWindow(t *testing.T) {
	res := AnalyzeEmotions(nil)
	require.Zero(t, res.TotalDays)
	require.Zero(t, res.AveragePNRatio)
	require.Empty(t, res.TopEmotions)
	require.Zero(t, res.EmotionDiversity)
	require.Zero(t, res.PositiveDays)
	require.Zero(t, res.NegativeDays)
	require.Empty(t, res.Trends)
}

func TestAnalyzeEmotions(t *testing.T) {
	logs := []models.EmotionLog{
		{
			Date:    day(3),
			PNRatio: 0.75, PositiveCount: 3, NegativeCount: 1,
			Emotions: models.EmotionList{
				{Name: "joy", Type: "positive"},
				{Name: "calm", Type: "positive"},
				{Name: "joy", Type: "positive"},
				{Name: "anger", Type: "negative"},
			},
		},
		{
			Date:    day(2),
			PNRatio: 0.25, PositiveCount: 1, NegativeCount: 3,
			Emotions: models.EmotionList{
				{Name: "joy", Type: "positive"},
				{Name: "fear", Type: "negative"},
				{Name: "anger", Type: "negative"},
				{Name: "anger", Type: "negative"},
			},
		},
	}

	res := AnalyzeEmotions(logs)
	require.Equal(t, 2, res.TotalDays)
	require.Equal(t, 0.5, res.AveragePNRatio)
	require.Equal(t, 1, res.PositiveDays)
	require.Equal(t, 1, res.NegativeDays)
	require.Equal(t, 4, res.EmotionDiversity)
	require.Len(t, res.Trends, 2)

	require.Equal(t, "joy", res.TopEmotions[0].Name)
	require.Equal(t, 3, res.TopEmotions[0].Count)
	require.Equal(t, "anger", res.TopEmotions[1].Name)
	require.Equal(t, 3, res.TopEmotions[1].Count)
}

func TestAnalyzeEmotionsAverageRounding(t *testing.T) {
	logs := []models.EmotionLog{
		{Date: day(1), PNRatio: 0.75},
		{Date: day(2), PNRatio: 0.5},
	}
	res := AnalyzeEmotions(logs)
	require.Equal(t, 0.63, res.AveragePNRatio)
}

func TestAnalyzeEmotionsTopTenCap(t *testing.T) {
	var emotions models.EmotionList
	for i := 0; i < 12; i++ {
		emotions = append(emotions, models.Emotion{Name: fmt.Sprintf("e%02d", i), Type: "positive"})
	}
	res := AnalyzeEmotions([]models.EmotionLog{{Date: day(1), Emotions: emotions, PNRatio: 1}})
	require.Len(t, res.TopEmotions, 10)
	require.Equal(t, 12, res.EmotionDiversity)
}

func TestAnalyzeEmotionsHalfRatioCountsPositive(t *testing.T) {
	res := AnalyzeEmotions([]models.EmotionLog{{Date: day(1), PNRatio: 0.5}})
	require.Equal(t, 1, res.PositiveDays)
	require.Zero(t, res.NegativeDays)
}
