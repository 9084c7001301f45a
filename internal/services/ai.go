package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/utils"
)

// TaskDraft is a task proposed for a project but not yet stored
type TaskDraft struct {
	Title    string              `json:"title"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *time.Time          `json:"due_date"`
}

// TaskDrafter proposes tasks for a project from free text
type TaskDrafter interface {
	DraftTasks(ctx context.Context, project models.Project, text string) ([]TaskDraft, error)
}

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// draftJSON is the shape the model is asked to return. Dates are strings so that
// a bare YYYY-MM-DD answer still parses.
type draftJSON struct {
	Title    string  `json:"title"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"`
}

// DraftTasks asks the chat model to break text down into tasks for project
func (s *AIService) DraftTasks(ctx context.Context, project models.Project, text string) ([]TaskDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a project planning assistant. Extract concrete tasks from the text below.

Current time: %s
Project: %s (%s), running %s to %s

Text:
%s

Return a JSON array of the extracted tasks:
[
  {
    "title": "short task title",
    "priority": "low | medium | high",
    "due_date": "deadline in ISO 8601 (e.g. 2025-10-28T23:59:59Z), or null when none is stated"
  }
]

Rules:
- Return [] when the text contains no tasks
- Convert relative deadlines ("tomorrow", "next week") into concrete dates
- Return only JSON with no explanation`,
		now().Format("2006-01-02 15:04:05"),
		project.Name, project.Code,
		project.StartDate.Format(utils.DateLayout), project.EndDate.Format(utils.DateLayout),
		text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseDrafts(resp.Choices[0].Message.Content)
}

func parseDrafts(content string) ([]TaskDraft, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw []draftJSON
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	drafts := make([]TaskDraft, 0, len(raw))
	for _, r := range raw {
		draft := TaskDraft{Title: r.Title, Priority: models.TaskPriority(strings.ToLower(strings.TrimSpace(r.Priority)))}
		if r.DueDate != nil {
			if due, err := utils.ParseDate(*r.DueDate); err == nil {
				draft.DueDate = &due
			}
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
