package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/datalens-ai/datalens/pkg/llm"
)

// judgeSchema constrains judge output to a flat score map.
var judgeSchema = []byte(`{
  "type": "object",
  "properties": {
    "relevance": {"type": "number", "minimum": 0, "maximum": 1},
    "groundedness": {"type": "number", "minimum": 0, "maximum": 1},
    "completeness": {"type": "number", "minimum": 0, "maximum": 1},
    "comment": {"type": "string"}
  },
  "required": ["relevance", "groundedness", "completeness"]
}`)

// scheduleJudgeScoring launches a detached judge evaluation of the turn.
// phase is "judge_early" (before the first decision lands) or "judge_late"
// (after the turn finished, scoring the final answer too).
func (t *Turn) scheduleJudgeScoring(phase string) {
	prompt := t.params.Prompt.Content
	answer := t.finalContent
	completionID := t.params.SystemCompletionID
	model := t.modelID()
	client := t.rt.LLM
	sessions := t.rt.Sessions

	t.rt.Tasks.Go(phase, backgroundTaskTimeout, func(ctx context.Context) {
		user := "User prompt:\n" + prompt
		if phase == "judge_late" && answer != "" {
			user += "\n\nFinal answer:\n" + answer
		}
		chunks, err := client.Generate(ctx, &llm.GenerateInput{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "Score this analyst turn. Return JSON scores in [0,1]."},
				{Role: llm.RoleUser, Content: user},
			},
			ModelID:        model,
			ResponseSchema: judgeSchema,
		})
		if err != nil {
			slog.Warn("judge call failed", "phase", phase, "error", err)
			return
		}
		text, err := collectText(ctx, chunks)
		if err != nil {
			slog.Warn("judge stream failed", "phase", phase, "error", err)
			return
		}
		var scores map[string]interface{}
		if err := json.Unmarshal([]byte(text), &scores); err != nil {
			slog.Warn("judge output not JSON", "phase", phase, "error", err)
			return
		}
		scores["phase"] = phase
		if err := sessions().SetJudgeScores(ctx, completionID, scores); err != nil {
			slog.Warn("judge scores write failed", "phase", phase, "error", err)
		}
	})
}

// scheduleTitleGeneration launches detached report title generation from the
// first user prompt.
func (t *Turn) scheduleTitleGeneration() {
	prompt := t.params.Prompt.Content
	reportID := t.params.ReportID
	model := t.modelID()
	client := t.rt.LLM
	sessions := t.rt.Sessions

	t.rt.Tasks.Go("report_title", backgroundTaskTimeout, func(ctx context.Context) {
		chunks, err := client.Generate(ctx, &llm.GenerateInput{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "Write a report title of at most 6 words for this analysis request. Respond with the title only."},
				{Role: llm.RoleUser, Content: prompt},
			},
			ModelID: model,
		})
		if err != nil {
			slog.Warn("title call failed", "report_id", reportID, "error", err)
			return
		}
		text, err := collectText(ctx, chunks)
		if err != nil {
			slog.Warn("title stream failed", "report_id", reportID, "error", err)
			return
		}
		title := strings.Trim(strings.TrimSpace(text), `"`)
		if title == "" {
			return
		}
		if err := sessions().SetReportTitle(ctx, reportID, title); err != nil {
			slog.Warn("title write failed", "report_id", reportID, "error", err)
		}
	})
}

// collectText drains a chunk stream into its concatenated text, failing on
// the first error chunk.
func collectText(ctx context.Context, chunks <-chan llm.Chunk) (string, error) {
	var b strings.Builder
	for chunk := range chunks {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		switch c := chunk.(type) {
		case *llm.TextChunk:
			b.WriteString(c.Content)
		case *llm.ErrorChunk:
			return "", fmt.Errorf("llm stream failed: %s (code: %s)", c.Message, c.Code)
		}
	}
	return b.String(), nil
}
