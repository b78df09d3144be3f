package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/models"
)

// suggestionSchema constrains the suggester output to a draft list.
var suggestionSchema = []byte(`{
  "type": "object",
  "properties": {
    "instructions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "category": {"type": "string"}
        },
        "required": ["text"]
      }
    }
  },
  "required": ["instructions"]
}`)

// maxSuggestions caps drafts persisted per turn.
const maxSuggestions = 5

// runSuggestions streams post-analysis instruction suggestions. Runs inline
// after completion.finished on regular successful turns; best-effort
// throughout — any failure terminates with an empty suggest.finished.
func (t *Turn) runSuggestions(ctx context.Context) {
	if !t.shouldSuggest() {
		return
	}

	t.stream.Emit(ctx, events.EventSuggestStarted, nil)

	drafts, err := t.generateSuggestions(ctx)
	if err != nil {
		slog.Warn("suggestion generation failed", "completion_id", t.params.SystemCompletionID, "error", err)
		t.stream.Emit(ctx, events.EventSuggestFinished, events.SuggestFinishedPayload{
			Instructions: []events.InstructionDraft{},
		})
		return
	}

	persisted := make([]events.InstructionDraft, 0, len(drafts))
	for _, draft := range drafts {
		id, err := t.session.CreateInstruction(ctx, models.CreateInstructionRequest{
			ReportID: t.params.ReportID,
			Text:     draft.Text,
			Category: draft.Category,
			LoadMode: "intelligent",
			AISource: "completion",
		})
		if err != nil {
			slog.Warn("suggested instruction persist failed", "error", err)
			continue
		}
		out := events.InstructionDraft{ID: id, Text: draft.Text, Category: draft.Category}
		persisted = append(persisted, out)
		t.stream.Emit(ctx, events.EventSuggestPartial, events.SuggestPartialPayload{Instruction: out})
	}

	t.stream.Emit(ctx, events.EventSuggestFinished, events.SuggestFinishedPayload{
		Instructions: persisted,
	})
}

// shouldSuggest gates suggestions to regular successful turns. Widget and
// step edit turns skip suggestions: the prompt there is an edit command, not
// analysis the user may want to standardize.
func (t *Turn) shouldSuggest() bool {
	if t.stopRequested.Load() || !t.state.AnalysisDone {
		return false
	}
	if t.params.Prompt.WidgetID != "" || t.params.Prompt.StepID != "" {
		return false
	}
	return t.params.Prompt.Mode == "" || t.params.Prompt.Mode == "regular"
}

func (t *Turn) generateSuggestions(ctx context.Context) ([]models.InstructionDraft, error) {
	system := "You review a finished data-analysis conversation turn and propose " +
		"short reusable instructions the user may want applied to future turns. " +
		"Suggest only preferences clearly implied by the conversation. " +
		"Return {\"instructions\": []} when nothing qualifies."
	user := "User prompt:\n" + t.params.Prompt.Content + "\n\nFinal answer:\n" + t.finalContent

	chunks, err := t.rt.LLM.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		ModelID:        t.modelID(),
		ResponseSchema: suggestionSchema,
	})
	if err != nil {
		return nil, err
	}

	text, err := collectText(ctx, chunks)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Instructions []models.InstructionDraft `json:"instructions"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, err
	}

	drafts := parsed.Instructions[:0]
	for _, d := range parsed.Instructions {
		if strings.TrimSpace(d.Text) == "" {
			continue
		}
		drafts = append(drafts, d)
		if len(drafts) == maxSuggestions {
			break
		}
	}
	return drafts, nil
}
