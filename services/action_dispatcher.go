package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"
	"github.com/AshwinRamana/life-tracking-app/utils"
)

// ActionSink is the persistence surface the dispatcher writes through:
// one method per action kind, each backed by the matching store service.
type ActionSink interface {
	LogFood(userID uint, mealType, name string, calories int) error
	LogActivity(userID uint, title, category, timeOfDay string) error
	AppendJournal(userID uint, content string) error
	CreateGoal(userID uint, title string, dueDate time.Time) error
	UpdateHealth(userID uint, update HealthUpdate) error
}

// Dispatcher walks an extracted action batch strictly in order, one
// write at a time, and turns each outcome into a human-readable status
// line. A failed action never stops the rest of the batch; every action
// yields exactly one line (health yields the line plus a best-effort
// companion activity entry).
type Dispatcher struct {
	sink ActionSink
	hub  *RealtimeHub     // nil outside the server
	now  func() time.Time // injectable clock
}

func NewDispatcher(sink ActionSink, hub *RealtimeHub) *Dispatcher {
	return &Dispatcher{sink: sink, hub: hub, now: time.Now}
}

func (d *Dispatcher) Dispatch(userID uint, actions []Action) []string {
	statuses := []string{}
	for _, action := range actions {
		if msg, ok := d.dispatchOne(userID, action); ok {
			statuses = append(statuses, msg)
			if d.hub != nil {
				d.hub.Broadcast(userID, map[string]any{"kind": "chat.status", "message": msg})
			}
		}
	}
	return statuses
}

// dispatchOne performs a single action. ok=false means no endpoint
// resolved (unknown type) and nothing should be reported.
func (d *Dispatcher) dispatchOne(userID uint, action Action) (string, bool) {
	var (
		err    error
		detail string
	)

	switch action.Type {
	case "food":
		mealType := action.MealType
		if mealType == "" {
			mealType = models.SlotSnacks
		}
		calories := 0
		if action.Calories != nil {
			if v, ok := utils.LenientInt(action.Calories.String()); ok {
				calories = v
			}
		}
		detail = actionDetail(action)
		err = d.sink.LogFood(userID, mealType, action.Name, calories)

	case "activity":
		category := action.Category
		if category == "" {
			category = models.CategoryRest
		}
		detail = actionDetail(action)
		err = d.sink.LogActivity(userID, action.Title, category, d.clockTime())

	case "journal":
		detail = actionDetail(action)
		err = d.sink.AppendJournal(userID, action.Content)

	case "goal":
		due := d.goalDueDate(action.DueDate)
		detail = actionDetail(action)
		err = d.sink.CreateGoal(userID, action.Title, due)

	case "health":
		var update HealthUpdate
		update, detail = healthUpdateFromAction(action)
		err = d.sink.UpdateHealth(userID, update)

	default:
		// Known gap: the model occasionally invents types. Nothing to
		// persist and nothing worth telling the user; leave a trace for
		// debugging only.
		log.Printf("dispatcher: skipping unknown action type %q", action.Type)
		return "", false
	}

	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return fmt.Sprintf("⚠️ Failed to log %s: %s", action.Type, rejected.Reason), true
		}
		log.Printf("dispatcher: %s action error: %v", action.Type, err)
		return fmt.Sprintf("❌ Technical error logging %s.", action.Type), true
	}

	label := "Logged your " + action.Type
	switch action.Type {
	case "goal":
		label = "Set new goal"
	case "health":
		label = "Logged health data"
		// Surface the health change on the activity timeline too.
		// Best effort: a failure here is ignored and adds no message.
		_ = d.sink.LogActivity(userID, "Health Update: "+detail, models.CategoryFitness, d.clockTime())
	}

	if d.hub != nil {
		d.hub.Broadcast(userID, map[string]any{"kind": "log.created", "type": action.Type})
	}
	return fmt.Sprintf("✅ %s: \"%s\"", label, detail), true
}

// goalDueDate parses a model-provided date-only string, defaulting to
// now+24h when absent or unparseable.
func (d *Dispatcher) goalDueDate(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}
	due := d.now().Add(24 * time.Hour).UTC()
	return time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
}

func (d *Dispatcher) clockTime() string {
	return d.now().Format("03:04 PM")
}

// healthUpdateFromAction coerces the four dispatchable health fields.
// A value that does not parse is omitted from the update entirely, never
// sent as zero.
func healthUpdateFromAction(action Action) (HealthUpdate, string) {
	var u HealthUpdate

	if action.Steps != nil {
		if v, ok := utils.LenientInt(action.Steps.String()); ok {
			u.Steps = &v
		}
	}
	if action.SleepHours != nil {
		if v, ok := utils.LenientFloat(action.SleepHours.String()); ok {
			u.SleepHours = &v
		}
	}
	if action.SleepMinutes != nil {
		if v, ok := utils.LenientInt(action.SleepMinutes.String()); ok {
			u.SleepMinutes = &v
		}
	}
	if action.Weight != nil {
		if v, ok := utils.LenientFloat(action.Weight.String()); ok {
			u.Weight = &v
		}
	}
	if action.WaterIntake != nil {
		if v, ok := utils.LenientInt(action.WaterIntake.String()); ok {
			u.WaterIntake = &v
		}
	}

	detail := "Health details"
	switch {
	case u.Steps != nil:
		detail = fmt.Sprintf("%d steps", *u.Steps)
	case u.SleepHours != nil:
		detail = fmt.Sprintf("%gh sleep", *u.SleepHours)
	case u.Weight != nil:
		detail = fmt.Sprintf("%gkg weight", *u.Weight)
	}
	return u, detail
}

func actionDetail(action Action) string {
	if action.Name != "" {
		return action.Name
	}
	if action.Title != "" {
		return action.Title
	}
	return "Entry"
}
