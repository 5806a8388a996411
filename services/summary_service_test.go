package services

import (
	"context"
	"errors"
	"testing"

	"github.com/AshwinRamana/life-tracking-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSummaryService(t *testing.T, db *gorm.DB, gen TextGenerator) *SummaryService {
	t.Helper()
	builder := NewContextBuilder(
		NewActivityLogService(db),
		NewFoodService(db),
		NewHealthService(db),
		NewJournalService(db),
	)
	return NewSummaryService(db, builder, gen)
}

func TestGenerateTodayStoresSummary(t *testing.T) {
	db := newTestDB(t)
	gen := &stubGenerator{out: `{
		"summary": "A productive day with a good lunch.",
		"moodScore": 8,
		"actionItem": "Take a walk after dinner.",
		"suggestedMood": "Upbeat 😄",
		"suggestedFocus": "Health"
	}`}
	svc := newSummaryService(t, db, gen)

	result, err := svc.GenerateToday(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, result.Mock)
	assert.Equal(t, "A productive day with a good lunch.", result.Summary.SummaryContent)
	assert.Equal(t, 8, result.Summary.MoodScore)
	assert.Equal(t, []string{"Take a walk after dinner."}, result.Summary.ActionItems)
	assert.Equal(t, "Upbeat 😄", result.SuggestedMood)
	assert.Equal(t, "Health", result.SuggestedFocus)

	var stored models.DailySummary
	require.NoError(t, db.Where("user_id = ?", uint(1)).First(&stored).Error)
	assert.Equal(t, "A productive day with a good lunch.", stored.SummaryContent)
}

func TestGenerateTodayProvidersDown(t *testing.T) {
	db := newTestDB(t)
	svc := newSummaryService(t, db, &stubGenerator{err: errors.New("every provider timed out")})

	result, err := svc.GenerateToday(context.Background(), 1)
	require.NoError(t, err, "provider failure degrades, it does not error")

	assert.True(t, result.Mock)
	assert.Equal(t, 7, result.Summary.MoodScore)
	assert.Equal(t, "Calm 😌", result.SuggestedMood)
	assert.Equal(t, "Momentum", result.SuggestedFocus)
	assert.NotContains(t, result.Summary.SummaryContent, "timed out",
		"raw provider errors must not leak into the stored summary")
}

func TestGenerateTodayOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)

	first := newSummaryService(t, db, &stubGenerator{out: `{"summary":"Draft.","moodScore":5,"actionItem":"Rest."}`})
	_, err := first.GenerateToday(context.Background(), 1)
	require.NoError(t, err)

	second := newSummaryService(t, db, &stubGenerator{out: `{"summary":"Final.","moodScore":9,"actionItem":"Celebrate."}`})
	result, err := second.GenerateToday(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Final.", result.Summary.SummaryContent)

	var count int64
	require.NoError(t, db.Model(&models.DailySummary{}).Where("user_id = ?", uint(1)).Count(&count).Error)
	assert.EqualValues(t, 1, count, "regenerating the same day must upsert, not duplicate")
}
