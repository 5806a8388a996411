package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The model is asked for JSON but routinely wraps it in a markdown fence
// and improvises field types (numbers as strings, "1,234" formatting).
// Parsing here is strict about the envelope shape and lenient about
// scalar types; fields outside the known shapes are dropped.

// Flex is a scalar that accepts a JSON string or number and keeps the
// raw text for lenient parsing downstream. JSON null decodes as empty.
type Flex string

func (f *Flex) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = Flex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = Flex(n.String())
		return nil
	}
	return fmt.Errorf("expected string or number, got %s", string(b))
}

func (f Flex) String() string { return string(f) }

// Action is the tagged union extracted from chat. Type selects which of
// the remaining fields matter; the rest stay zero.
type Action struct {
	Type string `json:"type"`

	// food
	MealType string `json:"mealType,omitempty"`
	Name     string `json:"name,omitempty"`
	Calories *Flex  `json:"calories,omitempty"`

	// activity + goal
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`

	// journal
	Content string `json:"content,omitempty"`

	// health
	Steps        *Flex `json:"steps,omitempty"`
	SleepHours   *Flex `json:"sleepHours,omitempty"`
	SleepMinutes *Flex `json:"sleepMinutes,omitempty"`
	Weight       *Flex `json:"weight,omitempty"`
	WaterIntake  *Flex `json:"waterIntake,omitempty"`
}

type ChatPayload struct {
	Reply   string   `json:"reply"`
	Actions []Action `json:"actions"`
}

type SummaryPayload struct {
	Summary        string `json:"summary"`
	MoodScore      int    `json:"moodScore"`
	ActionItem     string `json:"actionItem"`
	SuggestedMood  string `json:"suggestedMood"`
	SuggestedFocus string `json:"suggestedFocus"`
}

// CleanModelJSON strips markdown code fences from a model reply.
func CleanModelJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func jsonUnmarshalClean(raw string, v any) error {
	return json.Unmarshal([]byte(CleanModelJSON(raw)), v)
}

func ParseChatPayload(raw string) (*ChatPayload, error) {
	var payload ChatPayload
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("parse chat payload: %w", err)
	}
	if payload.Actions == nil {
		payload.Actions = []Action{}
	}
	return &payload, nil
}

func ParseSummaryPayload(raw string) (*SummaryPayload, error) {
	var payload SummaryPayload
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("parse summary payload: %w", err)
	}
	return &payload, nil
}
