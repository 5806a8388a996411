package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodAddItemAccumulates(t *testing.T) {
	svc := NewFoodService(newTestDB(t))

	_, err := svc.AddItem(1, "breakfast", "Eggs", 150)
	require.NoError(t, err)
	day, err := svc.AddItem(1, "breakfast", "Toast", 120)
	require.NoError(t, err)

	assert.Equal(t, 270, day.TotalCalories)
	require.Len(t, day.Breakfast, 2)
	assert.Equal(t, "Eggs", day.Breakfast[0].Name)
	assert.Equal(t, "Toast", day.Breakfast[1].Name)
	assert.Empty(t, day.Lunch)
}

func TestFoodAddItemSlots(t *testing.T) {
	svc := NewFoodService(newTestDB(t))

	_, err := svc.AddItem(1, "lunch", "Burger", 600)
	require.NoError(t, err)
	day, err := svc.AddItem(1, "snacks", "Apple", 95)
	require.NoError(t, err)

	assert.Equal(t, 695, day.TotalCalories)
	assert.Len(t, day.Lunch, 1)
	assert.Len(t, day.Snacks, 1)
}

func TestFoodAddItemInvalidSlot(t *testing.T) {
	svc := NewFoodService(newTestDB(t))

	_, err := svc.AddItem(1, "midnight-fridge-raid", "Cake", 400)
	require.Error(t, err)
	var rejected *RejectedError
	assert.ErrorAs(t, err, &rejected)
}

func TestFoodTodayAbsent(t *testing.T) {
	svc := NewFoodService(newTestDB(t))

	day, err := svc.Today(1)
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestFoodBucketsArePerUser(t *testing.T) {
	svc := NewFoodService(newTestDB(t))

	_, err := svc.AddItem(1, "dinner", "Pasta", 700)
	require.NoError(t, err)

	day, err := svc.Today(2)
	require.NoError(t, err)
	assert.Nil(t, day)
}
