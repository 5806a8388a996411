package services

import "time"

// StoreSink adapts the five store services to the dispatcher's
// ActionSink surface, discarding the stored shapes the HTTP handlers
// care about but the dispatcher does not.
type StoreSink struct {
	food       *FoodService
	activities *ActivityLogService
	journal    *JournalService
	goals      *GoalService
	health     *HealthService
}

func NewStoreSink(
	food *FoodService,
	activities *ActivityLogService,
	journal *JournalService,
	goals *GoalService,
	health *HealthService,
) *StoreSink {
	return &StoreSink{
		food:       food,
		activities: activities,
		journal:    journal,
		goals:      goals,
		health:     health,
	}
}

func (s *StoreSink) LogFood(userID uint, mealType, name string, calories int) error {
	_, err := s.food.AddItem(userID, mealType, name, calories)
	return err
}

func (s *StoreSink) LogActivity(userID uint, title, category, timeOfDay string) error {
	_, err := s.activities.Create(userID, category, title, timeOfDay)
	return err
}

func (s *StoreSink) AppendJournal(userID uint, content string) error {
	_, err := s.journal.Append(userID, content)
	return err
}

func (s *StoreSink) CreateGoal(userID uint, title string, dueDate time.Time) error {
	_, err := s.goals.Create(userID, title, dueDate)
	return err
}

func (s *StoreSink) UpdateHealth(userID uint, update HealthUpdate) error {
	_, err := s.health.Upsert(userID, update)
	return err
}
