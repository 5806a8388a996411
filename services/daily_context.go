package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"golang.org/x/sync/errgroup"
)

// ContextBuilder renders a user's day into the text block the AI prompts
// consume. The exact format is a contract only with the model; nothing
// else reads it.
type ContextBuilder struct {
	activities *ActivityLogService
	food       *FoodService
	health     *HealthService
	journal    *JournalService
}

func NewContextBuilder(
	activities *ActivityLogService,
	food *FoodService,
	health *HealthService,
	journal *JournalService,
) *ContextBuilder {
	return &ContextBuilder{activities: activities, food: food, health: health, journal: journal}
}

// BuildDailyContext fetches the four categories concurrently; none of
// them depend on each other. Absent buckets are valid steady state, not
// errors.
func (b *ContextBuilder) BuildDailyContext(userID uint) (string, error) {
	var (
		activities []models.ActivityLog
		food       *FoodDay
		health     *models.HealthLog
		journal    *models.JournalLog
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		activities, err = b.activities.Today(userID)
		return err
	})
	g.Go(func() error {
		var err error
		food, err = b.food.Today(userID)
		return err
	})
	g.Go(func() error {
		var err error
		health, err = b.health.Today(userID)
		return err
	})
	g.Go(func() error {
		var err error
		journal, err = b.journal.Today(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return FormatDailyContext(time.Now(), activities, food, health, journal), nil
}

// FormatDailyContext is the pure rendering half, split out so it can be
// exercised without a database.
func FormatDailyContext(
	now time.Time,
	activities []models.ActivityLog,
	food *FoodDay,
	health *models.HealthLog,
	journal *models.JournalLog,
) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Date: %s\n\n", now.UTC().Format("Mon Jan 02 2006"))

	sb.WriteString("[ACTIVITIES]\n")
	if len(activities) > 0 {
		for _, a := range activities {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n", a.Time, a.Title, a.Category)
		}
	} else {
		sb.WriteString("No activities logged.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("[NUTRITION]\n")
	if food != nil {
		fmt.Fprintf(&sb, "Total Calories: %d\n", food.TotalCalories)
		writeMealLine(&sb, "BREAKFAST", food.Breakfast)
		writeMealLine(&sb, "LUNCH", food.Lunch)
		writeMealLine(&sb, "DINNER", food.Dinner)
		writeMealLine(&sb, "SNACKS", food.Snacks)
	} else {
		sb.WriteString("No food logged.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("[HEALTH METRICS]\n")
	if health != nil {
		fmt.Fprintf(&sb, "Steps: %d\n", health.Steps)
		fmt.Fprintf(&sb, "Sleep: %gh %dm\n", health.SleepHours, health.SleepMinutes)
		if health.Weight > 0 {
			fmt.Fprintf(&sb, "Weight: %g\n", health.Weight)
		} else {
			sb.WriteString("Weight: Not logged\n")
		}
		fmt.Fprintf(&sb, "Water: %dml\n", health.WaterIntake)
	} else {
		sb.WriteString("No health metrics logged.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("[JOURNAL / THOUGHTS]\n")
	if journal != nil && len(journal.Entries) > 0 {
		for _, e := range journal.Entries {
			fmt.Fprintf(&sb, "- [%s]: %s\n", e.Timestamp.Format("3:04:05 PM"), e.Content)
		}
	} else {
		sb.WriteString("No journal entries today.\n")
	}

	return sb.String()
}

func writeMealLine(sb *strings.Builder, label string, items []models.FoodItem) {
	if len(items) == 0 {
		return
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Calories))
	}
	fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(parts, ", "))
}
