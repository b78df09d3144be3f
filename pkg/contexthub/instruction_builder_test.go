package contexthub

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInstructions(t *testing.T, records []InstructionRecord, p InstructionParams) InstructionsSection {
	t.Helper()
	builder := NewInstructionBuilder(&fakeStore{instructions: records})
	section, err := builder.Build(context.Background(), "report-1", p)
	require.NoError(t, err)
	return section
}

func TestInstructionBuilder_Build(t *testing.T) {
	t.Run("always rows load first in position order", func(t *testing.T) {
		section := buildInstructions(t, []InstructionRecord{
			{ID: "i2", Text: "second", LoadMode: LoadModeAlways, Position: 2},
			{ID: "i1", Text: "first", LoadMode: LoadModeAlways, Position: 1},
			{ID: "i3", Text: "disabled", LoadMode: LoadModeDisabled, Position: 0},
		}, InstructionParams{})
		require.Len(t, section.Items, 2)
		assert.Equal(t, "first", section.Items[0].Text)
		assert.Equal(t, "second", section.Items[1].Text)
		assert.Equal(t, LoadReasonAlways, section.Items[0].LoadReason)
	})

	t.Run("no query fills remaining slots with intelligent rows", func(t *testing.T) {
		section := buildInstructions(t, []InstructionRecord{
			{ID: "a", Text: "pinned", LoadMode: LoadModeAlways},
			{ID: "b", Text: "loose one", LoadMode: LoadModeIntelligent, Position: 1},
			{ID: "c", Text: "loose two", LoadMode: LoadModeIntelligent, Position: 2},
		}, InstructionParams{})
		require.Len(t, section.Items, 3)
		assert.Equal(t, LoadReasonFill, section.Items[1].LoadReason)
		assert.Equal(t, LoadReasonFill, section.Items[2].LoadReason)
	})

	t.Run("query scores intelligent rows and drops non-matches", func(t *testing.T) {
		section := buildInstructions(t, []InstructionRecord{
			{ID: "rev", Text: "Always report revenue in USD millions", LoadMode: LoadModeIntelligent},
			{ID: "ops", Text: "Prefer uptime dashboards", LoadMode: LoadModeIntelligent},
		}, InstructionParams{Query: "quarterly revenue trend"})
		require.Len(t, section.Items, 1)
		assert.Equal(t, "rev", section.Items[0].ID)
		assert.True(t, strings.HasPrefix(section.Items[0].LoadReason, "search_match:"))
	})

	t.Run("cap truncates after the always partition", func(t *testing.T) {
		records := []InstructionRecord{
			{ID: "a1", Text: "one", LoadMode: LoadModeAlways, Position: 1},
			{ID: "a2", Text: "two", LoadMode: LoadModeAlways, Position: 2},
			{ID: "i1", Text: "filler", LoadMode: LoadModeIntelligent},
		}
		section := buildInstructions(t, records, InstructionParams{MaxInContext: 2})
		require.Len(t, section.Items, 2)
		assert.Equal(t, "a1", section.Items[0].ID)
		assert.Equal(t, "a2", section.Items[1].ID)
	})

	t.Run("main build wins over loose rows when no build requested", func(t *testing.T) {
		section := buildInstructions(t, []InstructionRecord{
			{ID: "loose", Text: "loose", LoadMode: LoadModeAlways, BuildID: ""},
			{ID: "built", Text: "built", LoadMode: LoadModeAlways, BuildID: MainBuildID},
		}, InstructionParams{})
		require.Len(t, section.Items, 1)
		assert.Equal(t, "built", section.Items[0].ID)
	})

	t.Run("explicit build id pins selection", func(t *testing.T) {
		section := buildInstructions(t, []InstructionRecord{
			{ID: "main", Text: "main", LoadMode: LoadModeAlways, BuildID: MainBuildID},
			{ID: "exp", Text: "experiment", LoadMode: LoadModeAlways, BuildID: "exp-7"},
		}, InstructionParams{BuildID: "exp-7"})
		require.Len(t, section.Items, 1)
		assert.Equal(t, "exp", section.Items[0].ID)
	})
}

func TestKeywordScore(t *testing.T) {
	query := tokenize("quarterly revenue trend")

	t.Run("overlapping text scores positive", func(t *testing.T) {
		assert.Greater(t, keywordScore(query, "report revenue per quarter"), 0.0)
	})

	t.Run("unrelated text scores zero", func(t *testing.T) {
		assert.Zero(t, keywordScore(query, "uptime alerts go here"))
	})

	t.Run("stopwords never match", func(t *testing.T) {
		assert.Zero(t, keywordScore(tokenize("show the and of"), "the show goes on and on"))
	})
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"quarterly", "revenue", "2024"}, tokenize("Show the quarterly revenue for 2024!"))
	assert.Empty(t, tokenize("a of x"))
}
