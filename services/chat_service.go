package services

import (
	"context"
	"fmt"
	"log"

	"github.com/AshwinRamana/life-tracking-app/utils"
)

const chatPromptTemplate = `
SYSTEM: You are a helpful Life Assistant.
YOUR GOAL: Help the user track their day and set goals.
Analyze the user's message. If they express that they DID something or WANT to do something, extract that as an "action".

ACTION TYPES:
1. "food": If they ate something. ALWAYS estimate calories if not provided.
2. "activity": If they worked out, worked, or rested.
3. "journal": If they share a thought or reflection.
4. "goal": If they want to set a new goal. Extract "title" and estimate a "dueDate".
5. "health": If they mention steps, sleep, weight, or water. Extract "steps", "sleepHours", "sleepMinutes", "weight", or "waterIntake" as INTEGERS (no commas, no units).

Return JSON ONLY:
{
  "reply": "Your conversational response.",
  "actions": [
    { "type": "food", "mealType": "breakfast/lunch/dinner/snacks", "name": "Apple", "calories": 95 },
    { "type": "activity", "title": "coding", "category": "Work/Fitness/Social/Rest" },
    { "type": "journal", "content": "entry text" },
    { "type": "goal", "title": "Run 5k", "dueDate": "2025-12-24" },
    { "type": "health", "steps": 5000, "sleepHours": 7, "sleepMinutes": 30 }
  ]
}
If no action is needed, return an empty actions array.

CONTEXT:
%s

USER: "%s"
`

const fallbackChatReply = "I'm having trouble connecting to my brain (AI Providers failed). Please check your API keys in .env!"

type ChatService struct {
	contextBuilder *ContextBuilder
	ai             TextGenerator
	dispatcher     *Dispatcher
}

func NewChatService(cb *ContextBuilder, ai TextGenerator, dispatcher *Dispatcher) *ChatService {
	return &ChatService{contextBuilder: cb, ai: ai, dispatcher: dispatcher}
}

// ChatResult is what the chat endpoint returns: the conversational
// reply, the extracted actions, and one status line per dispatched
// action. Mock marks a degraded response backed by the canned fallback.
type ChatResult struct {
	Reply    string   `json:"reply"`
	Actions  []Action `json:"actions"`
	Statuses []string `json:"statuses"`
	Mock     bool     `json:"isMock,omitempty"`
}

// HandleMessage runs one chat round: build today's context, prompt the
// model, parse the structured reply, dispatch any actions. AI or parse
// failure degrades to the canned fallback; it never surfaces as an error
// to the caller.
func (s *ChatService) HandleMessage(ctx context.Context, userID uint, message string) (*ChatResult, error) {
	contextData, err := s.contextBuilder.BuildDailyContext(userID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(chatPromptTemplate, contextData, message)

	raw, err := s.ai.Generate(ctx, prompt, true)
	if err != nil {
		log.Printf("chat: AI provider error: %v", err)
		return mockChatResult(), nil
	}

	parsed, err := ParseChatPayload(raw)
	if err != nil {
		log.Printf("chat: %v", err)
		return mockChatResult(), nil
	}

	statuses := s.dispatcher.Dispatch(userID, parsed.Actions)

	return &ChatResult{
		Reply:    parsed.Reply,
		Actions:  parsed.Actions,
		Statuses: statuses,
	}, nil
}

func mockChatResult() *ChatResult {
	return &ChatResult{
		Reply:    fallbackChatReply,
		Actions:  []Action{},
		Statuses: []string{},
		Mock:     true,
	}
}

const estimatePromptTemplate = `
Estimate the calories for a standard serving of: "%s".
Provide a realistic number.

Return JSON ONLY:
{ "calories": 350 }
`

// EstimateCalories asks the model for a single-serving calorie count.
// On any failure it returns 0 with mock=true so the user can fill in the
// number by hand.
func (s *ChatService) EstimateCalories(ctx context.Context, foodName string) (calories int, mock bool) {
	raw, err := s.ai.Generate(ctx, fmt.Sprintf(estimatePromptTemplate, foodName), true)
	if err != nil {
		log.Printf("estimate: AI provider error: %v", err)
		return 0, true
	}

	var parsed struct {
		Calories *Flex `json:"calories"`
	}
	if err := jsonUnmarshalClean(raw, &parsed); err != nil {
		log.Printf("estimate: %v", err)
		return 0, true
	}
	if parsed.Calories != nil {
		if v, ok := utils.LenientInt(parsed.Calories.String()); ok {
			return v, false
		}
	}
	return 0, false
}
