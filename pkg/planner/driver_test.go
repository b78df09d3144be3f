package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/pkg/llm"
)

func collectEvents(t *testing.T, ch <-chan Event) (tokens []*TokensEvent, partials []*PartialEvent, finals []*FinalEvent) {
	t.Helper()
	for ev := range ch {
		switch e := ev.(type) {
		case *TokensEvent:
			tokens = append(tokens, e)
		case *PartialEvent:
			partials = append(partials, e)
		case *FinalEvent:
			finals = append(finals, e)
		}
	}
	return tokens, partials, finals
}

func TestDriver_Stream(t *testing.T) {
	ctx := context.Background()

	t.Run("valid streamed decision", func(t *testing.T) {
		client := &llm.StubClient{Scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: `{"plan_type": "action", `},
			&llm.TextChunk{Content: `"reasoning_message": "need the data", `},
			&llm.TextChunk{Content: `"action": {"name": "create_data", "arguments": {"query": "revenue"}}, `},
			&llm.TextChunk{Content: `"analysis_complete": false}`},
			&llm.UsageChunk{InputTokens: 100, OutputTokens: 40, TotalTokens: 140},
		}}}
		driver := NewDriver(client)

		ch, err := driver.Stream(ctx, &llm.GenerateInput{ModelID: "gpt-4o"})
		require.NoError(t, err)

		tokens, partials, finals := collectEvents(t, ch)
		assert.Len(t, tokens, 4)
		assert.NotEmpty(t, partials, "progressive decisions should surface before the final")

		require.Len(t, finals, 1)
		d := finals[0].Decision
		require.Nil(t, d.Err)
		assert.Equal(t, PlanTypeAction, d.PlanType)
		assert.Equal(t, "need the data", d.ReasoningMessage)
		require.True(t, d.HasAction())
		assert.Equal(t, "create_data", d.Action.Name)
	})

	t.Run("partials grow monotonically", func(t *testing.T) {
		client := &llm.StubClient{Scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: `{"plan_type": "research", "reasoning_message": "first`},
			&llm.TextChunk{Content: ` and then second`},
			&llm.TextChunk{Content: ` thoughts"}`},
		}}}
		driver := NewDriver(client)

		ch, err := driver.Stream(ctx, &llm.GenerateInput{ModelID: "gpt-4o"})
		require.NoError(t, err)

		_, partials, finals := collectEvents(t, ch)
		require.Len(t, finals, 1)
		assert.Nil(t, finals[0].Decision.Err)

		prevLen := -1
		for _, p := range partials {
			cur := len(p.Decision.ReasoningMessage)
			assert.Greater(t, cur+len(p.Decision.PlanType), prevLen)
			prevLen = cur
		}
	})

	t.Run("stream error yields a final with a decision error", func(t *testing.T) {
		client := &llm.StubClient{Scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: `{"plan_type":`},
			&llm.ErrorChunk{Message: "upstream exploded", Code: "stream_error"},
		}}}
		driver := NewDriver(client)

		ch, err := driver.Stream(ctx, &llm.GenerateInput{ModelID: "gpt-4o"})
		require.NoError(t, err)

		_, _, finals := collectEvents(t, ch)
		require.Len(t, finals, 1)
		require.NotNil(t, finals[0].Decision.Err)
		assert.Equal(t, ErrCodeValidation, finals[0].Decision.Err.Code)
		assert.Contains(t, finals[0].Decision.Err.Message, "upstream exploded")
	})

	t.Run("non-JSON output yields a validation failure", func(t *testing.T) {
		client := &llm.StubClient{Scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: `I would rather chat than emit JSON.`},
		}}}
		driver := NewDriver(client)

		ch, err := driver.Stream(ctx, &llm.GenerateInput{ModelID: "gpt-4o"})
		require.NoError(t, err)

		_, _, finals := collectEvents(t, ch)
		require.Len(t, finals, 1)
		require.NotNil(t, finals[0].Decision.Err)
		assert.Equal(t, ErrCodeInputValidation, finals[0].Decision.Err.Code)
	})

	t.Run("cancellation closes without a final", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		client := &llm.StubClient{Scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: `{"plan_type": "research"}`},
		}}}
		driver := NewDriver(client)

		ch, err := driver.Stream(cancelCtx, &llm.GenerateInput{ModelID: "gpt-4o"})
		require.NoError(t, err)

		_, _, finals := collectEvents(t, ch)
		assert.Empty(t, finals)
	})
}
