package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPartial(t *testing.T) {
	t.Run("no object start yet", func(t *testing.T) {
		assert.Nil(t, extractPartial(``))
		assert.Nil(t, extractPartial(`   `))
	})

	t.Run("complete object decodes as-is", func(t *testing.T) {
		d := extractPartial(`{"plan_type": "research", "reasoning_message": "done"}`)
		require.NotNil(t, d)
		assert.Equal(t, "research", d.PlanType)
		assert.Equal(t, "done", d.ReasoningMessage)
	})

	t.Run("unterminated string value keeps earlier fields", func(t *testing.T) {
		d := extractPartial(`{"plan_type": "research", "reasoning_message": "Looking at the rev`)
		require.NotNil(t, d)
		assert.Equal(t, "research", d.PlanType)
		assert.Empty(t, d.ReasoningMessage)
	})

	t.Run("dangling key is dropped", func(t *testing.T) {
		d := extractPartial(`{"plan_type": "action", "action": {"name": "create_data"}, "analysis_comp`)
		require.NotNil(t, d)
		assert.Equal(t, "action", d.PlanType)
		require.NotNil(t, d.Action)
		assert.Equal(t, "create_data", d.Action.Name)
	})

	t.Run("open nested object gets closed", func(t *testing.T) {
		d := extractPartial(`{"plan_type": "action", "action": {"name": "create_widget", "arguments": {"title": "Monthly"`)
		require.NotNil(t, d)
		require.NotNil(t, d.Action)
		assert.Equal(t, "create_widget", d.Action.Name)
	})

	t.Run("completed string value is kept", func(t *testing.T) {
		d := extractPartial(`{"plan_type": "research", "reasoning_message": "first thoughts",`)
		require.NotNil(t, d)
		assert.Equal(t, "first thoughts", d.ReasoningMessage)
	})
}

func TestRepairJSON(t *testing.T) {
	t.Run("already valid passes through", func(t *testing.T) {
		out, ok := repairJSON(`{"a": 1}`)
		require.True(t, ok)
		assert.JSONEq(t, `{"a": 1}`, out)
	})

	t.Run("leading prose before the object is skipped", func(t *testing.T) {
		out, ok := repairJSON(`Here is the plan: {"plan_type": "research"}`)
		require.True(t, ok)
		assert.JSONEq(t, `{"plan_type": "research"}`, out)
	})

	t.Run("dangling boolean literal tail is dropped", func(t *testing.T) {
		out, ok := repairJSON(`{"plan_type": "action", "analysis_complete": fal`)
		require.True(t, ok)
		assert.JSONEq(t, `{"plan_type": "action"}`, out)
	})

	t.Run("no object yields not ok", func(t *testing.T) {
		_, ok := repairJSON(`just text`)
		assert.False(t, ok)
	})
}
