package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zen-tracker-go/internal/models"
)

func emotionDay(d int, ratio float64, positive, negative int) models.EmotionLog {
	return models.EmotionLog{
		Date:          day(d),
		PNRatio:       ratio,
		PositiveCount: positive,
		NegativeCount: negative,
	}
}

func TestCorrelateEmptyInputs(t *testing.T) {
	res := Correlate(nil, nil)
	require.Equal(t, 0.5, res.CorrelationScore)
	require.Zero(t, res.MeditationDays)
	require.Zero(t, res.EmotionTrackedDays)
	require.Zero(t, res.AvgMeditationMinutes)
	require.Empty(t, res.DurationImpact)
	require.Empty(t, res.BestDays)
}

func TestCorrelateNeutralWhenOneSideEmpty(t *testing.T) {
	sessions := []models.MeditationSession{{Date: day(1), Duration: 20}}
	logs := []models.EmotionLog{emotionDay(1, 0.9, 9, 1)}

	res := Correlate(sessions, logs)
	require.Equal(t, 0.5, res.CorrelationScore)
}

func TestCorrelateScore(t *testing.T) {
	sessions := []models.MeditationSession{{Date: day(1), Duration: 20}}
	logs := []models.EmotionLog{
		emotionDay(1, 0.8, 4, 1),
		emotionDay(2, 0.4, 2, 3),
	}

	res := Correlate(sessions, logs)
	require.InDelta(t, 0.9, res.CorrelationScore, 1e-9)
	require.Equal(t, 0.8, res.WithMeditation.PNRatio)
	require.Equal(t, 0.4, res.WithoutMeditation.PNRatio)
	require.Contains(t, res.Message, "strong positive impact")
}

func TestCorrelateScoreClamped(t *testing.T) {
	sessions := []models.MeditationSession{{Date: day(1), Duration: 20}}
	logs := []models.EmotionLog{
		emotionDay(1, 1.0, 5, 0),
		emotionDay(2, 0.0, 0, 5),
	}
	res := Correlate(sessions, logs)
	require.Equal(t, 1.0, res.CorrelationScore)

	logs = []models.EmotionLog{
		emotionDay(1, 0.0, 0, 5),
		emotionDay(2, 1.0, 5, 0),
	}
	res = Correlate(sessions, logs)
	require.Equal(t, 0.0, res.CorrelationScore)
	require.Contains(t, res.Message, "just beginning")
}

func TestCorrelateSameDaySessionsMerge(t *testing.T) {
	sessions := []models.MeditationSession{
		{Date: day(1).Add(8 * 3600e9), Duration: 10},
		{Date: day(1).Add(20 * 3600e9), Duration: 15},
	}
	logs := []models.EmotionLog{emotionDay(1, 0.6, 3, 2)}

	res := Correlate(sessions, logs)
	require.Equal(t, 1, res.MeditationDays)
	require.Len(t, res.BestDays, 1)
	require.Equal(t, 25, res.BestDays[0].MeditationMinutes)
}

func TestCorrelateDurationBuckets(t *testing.T) {
	sessions := []models.MeditationSession{
		{Date: day(1), Duration: 5},
		{Date: day(2), Duration: 25},
		{Date: day(3), Duration: 45},
	}
	logs := []models.EmotionLog{
		emotionDay(1, 0.2, 1, 4),
		emotionDay(2, 0.6, 3, 2),
		emotionDay(3, 0.9, 9, 1),
	}

	res := Correlate(sessions, logs)
	require.Len(t, res.DurationImpact, 3)
	require.Equal(t, "0-10 min", res.DurationImpact[0].Range)
	require.Equal(t, "20-30 min", res.DurationImpact[1].Range)
	require.Equal(t, "30+ min", res.DurationImpact[2].Range)
	require.Equal(t, 0.9, res.DurationImpact[2].PNRatio)
}

func TestCorrelateBestDaysTopFive(t *testing.T) {
	var sessions []models.MeditationSession
	var logs []models.EmotionLog
	for d := 1; d <= 7; d++ {
		sessions = append(sessions, models.MeditationSession{Date: day(d), Duration: 10})
		logs = append(logs, emotionDay(d, float64(d)/10, d, 10-d))
	}

	res := Correlate(sessions, logs)
	require.Len(t, res.BestDays, 5)
	require.Equal(t, 0.7, res.BestDays[0].PNRatio)
	require.Equal(t, 0.3, res.BestDays[4].PNRatio)
}

func TestCorrelateAverages(t *testing.T) {
	sessions := []models.MeditationSession{
		{Date: day(1), Duration: 20},
		{Date: day(1), Duration: 15},
		{Date: day(2), Duration: 10},
	}
	logs := []models.EmotionLog{
		emotionDay(1, 0.5, 2, 2),
		emotionDay(4, 0.7, 7, 3),
	}

	res := Correlate(sessions, logs)
	require.Equal(t, 15, res.AvgMeditationMinutes)
	require.Equal(t, 2, res.MeditationDays)
	require.Equal(t, 2, res.EmotionTrackedDays)
	require.InDelta(t, 0.6, res.AvgPNRatio, 1e-9)
}
