package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

const summaryPromptTemplate = `
YOU ARE A PERSONAL LIFE COACH.
Analyze the user's day based on this data:
%s

TASK:
1. Write a short summary (max 3 sentences).
2. Rate mood/productivity (1-10).
3. Suggest 1 action item.
4. From the context, deduce a short "Current Mood" (text + 1 emoji) and "Current Focus" (text, max 2 words).

Return JSON ONLY:
{
  "summary": "...",
  "moodScore": 8,
  "actionItem": "...",
  "suggestedMood": "Reflective 🧘",
  "suggestedFocus": "Self Growth"
}
`

type SummaryService struct {
	db             *gorm.DB
	contextBuilder *ContextBuilder
	ai             TextGenerator
}

func NewSummaryService(db *gorm.DB, cb *ContextBuilder, ai TextGenerator) *SummaryService {
	return &SummaryService{db: db, contextBuilder: cb, ai: ai}
}

type SummaryResult struct {
	Summary        models.DailySummary `json:"summary"`
	SuggestedMood  string              `json:"suggestedMood"`
	SuggestedFocus string              `json:"suggestedFocus"`
	Mock           bool                `json:"isMock"`
}

// GenerateToday produces and upserts the daily summary. When the model
// is unreachable or returns junk the canned defaults are stored and
// returned instead; the caller still gets a well-formed summary.
func (s *SummaryService) GenerateToday(ctx context.Context, userID uint) (*SummaryResult, error) {
	contextData, err := s.contextBuilder.BuildDailyContext(userID)
	if err != nil {
		return nil, err
	}

	payload := &SummaryPayload{}
	mock := false

	raw, err := s.ai.Generate(ctx, fmt.Sprintf(summaryPromptTemplate, contextData), true)
	if err == nil {
		payload, err = ParseSummaryPayload(raw)
	}
	if err != nil {
		log.Printf("summary: %v", err)
		mock = true
		payload = &SummaryPayload{
			Summary:        "I noticed you're doing great! (AI providers are currently unreachable. Check your GROQ_API_KEY or GEMINI_API_KEY.)",
			MoodScore:      7,
			ActionItem:     "Continue tracking your day!",
			SuggestedMood:  "Calm 😌",
			SuggestedFocus: "Momentum",
		}
	}

	day := DayStart(time.Now())
	summary := models.DailySummary{
		UserID:         userID,
		Date:           day,
		SummaryContent: payload.Summary,
		MoodScore:      payload.MoodScore,
		ActionItems:    []string{payload.ActionItem},
	}
	if err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.DailySummary{
			SummaryContent: payload.Summary,
			MoodScore:      payload.MoodScore,
			ActionItems:    []string{payload.ActionItem},
		}).
		FirstOrCreate(&summary).Error; err != nil {
		return nil, err
	}

	return &SummaryResult{
		Summary:        summary,
		SuggestedMood:  payload.SuggestedMood,
		SuggestedFocus: payload.SuggestedFocus,
		Mock:           mock,
	}, nil
}
