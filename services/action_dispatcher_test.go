package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records every write and fails on demand, per action type.
type fakeSink struct {
	calls   []string
	fail    map[string]error
	food    []fakeFood
	acts    []fakeActivity
	goals   []fakeGoal
	healths []HealthUpdate
}

type fakeFood struct {
	mealType string
	name     string
	calories int
}

type fakeActivity struct {
	title    string
	category string
}

type fakeGoal struct {
	title string
	due   time.Time
}

func (f *fakeSink) LogFood(userID uint, mealType, name string, calories int) error {
	f.calls = append(f.calls, "food")
	f.food = append(f.food, fakeFood{mealType, name, calories})
	return f.fail["food"]
}

func (f *fakeSink) LogActivity(userID uint, title, category, timeOfDay string) error {
	f.calls = append(f.calls, "activity")
	f.acts = append(f.acts, fakeActivity{title, category})
	return f.fail["activity"]
}

func (f *fakeSink) AppendJournal(userID uint, content string) error {
	f.calls = append(f.calls, "journal")
	return f.fail["journal"]
}

func (f *fakeSink) CreateGoal(userID uint, title string, dueDate time.Time) error {
	f.calls = append(f.calls, "goal")
	f.goals = append(f.goals, fakeGoal{title, dueDate})
	return f.fail["goal"]
}

func (f *fakeSink) UpdateHealth(userID uint, update HealthUpdate) error {
	f.calls = append(f.calls, "health")
	f.healths = append(f.healths, update)
	return f.fail["health"]
}

func flex(s string) *Flex {
	f := Flex(s)
	return &f
}

func TestDispatchFoodCommaCalories(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{
		{Type: "food", Name: "Feast", Calories: flex("1,234")},
	})

	require.Len(t, sink.food, 1)
	assert.Equal(t, 1234, sink.food[0].calories)
	assert.Equal(t, "snacks", sink.food[0].mealType) // default on absent mealType
	require.Len(t, statuses, 1)
	assert.Equal(t, `✅ Logged your food: "Feast"`, statuses[0])
}

func TestDispatchFoodUnparseableCaloriesDefaultsToZero(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(1, []Action{{Type: "food", Name: "Mystery", Calories: flex("a lot")}})

	require.Len(t, sink.food, 1)
	assert.Equal(t, 0, sink.food[0].calories)
}

func TestDispatchHealthOmitsUnparseableFields(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(1, []Action{
		{Type: "health", Steps: flex("abc"), SleepHours: flex("7.5")},
	})

	require.Len(t, sink.healths, 1)
	u := sink.healths[0]
	assert.Nil(t, u.Steps, "unparseable steps must be absent, not zero")
	require.NotNil(t, u.SleepHours)
	assert.Equal(t, 7.5, *u.SleepHours)
}

func TestDispatchHealthCompanionActivity(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{
		{Type: "health", Steps: flex("12,000")},
	})

	// one status line, but two writes: the health update plus the
	// Fitness timeline entry
	require.Len(t, statuses, 1)
	assert.Equal(t, `✅ Logged health data: "12000 steps"`, statuses[0])
	assert.Equal(t, []string{"health", "activity"}, sink.calls)
	require.Len(t, sink.acts, 1)
	assert.Equal(t, "Health Update: 12000 steps", sink.acts[0].title)
	assert.Equal(t, "Fitness", sink.acts[0].category)
}

func TestDispatchHealthCompanionFailureIgnored(t *testing.T) {
	sink := &fakeSink{fail: map[string]error{"activity": fmt.Errorf("timeline down")}}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{{Type: "health", Steps: flex("100")}})

	require.Len(t, statuses, 1)
	assert.Contains(t, statuses[0], "✅")
}

func TestDispatchGoalDefaultDueDate(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	statuses := d.Dispatch(1, []Action{{Type: "goal", Title: "Run 5k"}})

	require.Len(t, sink.goals, 1)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), sink.goals[0].due)
	require.Len(t, statuses, 1)
	assert.Equal(t, `✅ Set new goal: "Run 5k"`, statuses[0])
}

func TestDispatchGoalExplicitDueDate(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(1, []Action{{Type: "goal", Title: "Ship it", DueDate: "2025-12-24"}})

	require.Len(t, sink.goals, 1)
	assert.Equal(t, time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), sink.goals[0].due)
}

func TestDispatchActivityDefaults(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(1, []Action{{Type: "activity", Title: "coding"}})

	require.Len(t, sink.acts, 1)
	assert.Equal(t, "Rest", sink.acts[0].category)
}

func TestDispatchUnknownTypeSkippedSilently(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{
		{Type: "teleport"},
		{},
		{Type: "journal", Content: "made it"},
	})

	// no message and no write for the unknown types; the journal entry
	// still lands
	require.Len(t, statuses, 1)
	assert.Equal(t, []string{"journal"}, sink.calls)
}

func TestDispatchContinuesPastFailures(t *testing.T) {
	sink := &fakeSink{fail: map[string]error{"journal": Reject("Content is required")}}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{
		{Type: "journal"},
		{Type: "food", Name: "Apple", Calories: flex("95")},
	})

	require.Len(t, statuses, 2)
	assert.Equal(t, "⚠️ Failed to log journal: Content is required", statuses[0])
	assert.Equal(t, `✅ Logged your food: "Apple"`, statuses[1])
}

func TestDispatchTechnicalErrorMessage(t *testing.T) {
	sink := &fakeSink{fail: map[string]error{"food": fmt.Errorf("connection refused")}}
	d := NewDispatcher(sink, nil)

	statuses := d.Dispatch(1, []Action{{Type: "food", Name: "Apple"}})

	require.Len(t, statuses, 1)
	assert.Equal(t, "❌ Technical error logging food.", statuses[0])
	// the raw error text never leaks into the transcript
	assert.NotContains(t, statuses[0], "connection refused")
}

func TestDispatchMessageBounds(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, nil)

	actions := []Action{
		{Type: "food", Name: "A", Calories: flex("1")},
		{Type: "health", Steps: flex("10")},
		{Type: "goal", Title: "G"},
		{Type: "nonsense"},
		{Type: "journal", Content: "x"},
	}
	statuses := d.Dispatch(1, actions)

	// at most one status per action; the unknown type contributes none
	assert.Len(t, statuses, 4)
	assert.LessOrEqual(t, len(sink.calls), 2*len(actions))
}
