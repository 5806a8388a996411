package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestHealthUpsertPartial(t *testing.T) {
	svc := NewHealthService(newTestDB(t))

	_, err := svc.Upsert(1, HealthUpdate{Steps: intp(5000), Weight: floatp(70.5)})
	require.NoError(t, err)

	// second update touches sleep only; steps and weight must survive
	log, err := svc.Upsert(1, HealthUpdate{SleepHours: floatp(7.5), SleepMinutes: intp(30)})
	require.NoError(t, err)

	assert.Equal(t, 5000, log.Steps)
	assert.Equal(t, 70.5, log.Weight)
	assert.Equal(t, 7.5, log.SleepHours)
	assert.Equal(t, 30, log.SleepMinutes)
	assert.Equal(t, 0, log.WaterIntake)
}

func TestHealthUpsertExplicitZero(t *testing.T) {
	svc := NewHealthService(newTestDB(t))

	_, err := svc.Upsert(1, HealthUpdate{Steps: intp(5000)})
	require.NoError(t, err)

	log, err := svc.Upsert(1, HealthUpdate{Steps: intp(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, log.Steps, "an explicit zero is a real update")
}

func TestHealthUpsertEmptyUpdateCreatesBucket(t *testing.T) {
	svc := NewHealthService(newTestDB(t))

	_, err := svc.Upsert(1, HealthUpdate{})
	require.NoError(t, err)

	log, err := svc.Today(1)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, 0, log.Steps)
}

func TestHealthTodayAbsent(t *testing.T) {
	svc := NewHealthService(newTestDB(t))

	log, err := svc.Today(1)
	require.NoError(t, err)
	assert.Nil(t, log)
}
