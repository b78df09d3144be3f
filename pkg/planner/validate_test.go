package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDecision(t *testing.T) {
	t.Run("valid action decision", func(t *testing.T) {
		d, derr := ValidateDecision(`{
			"plan_type": "action",
			"reasoning_message": "need revenue data",
			"assistant_message": "Let me pull the numbers.",
			"action": {"name": "create_data", "arguments": {"query": "total revenue"}},
			"analysis_complete": false
		}`)
		require.Nil(t, derr)
		require.NotNil(t, d)
		assert.Equal(t, PlanTypeAction, d.PlanType)
		assert.True(t, d.HasAction())
		assert.Equal(t, "create_data", d.Action.Name)
		assert.Equal(t, "total revenue", d.Action.Arguments["query"])
	})

	t.Run("valid research decision without action", func(t *testing.T) {
		d, derr := ValidateDecision(`{"plan_type": "research", "reasoning_message": "thinking"}`)
		require.Nil(t, derr)
		assert.Equal(t, PlanTypeResearch, d.PlanType)
		assert.False(t, d.HasAction())
	})

	t.Run("completed action plan may omit the action", func(t *testing.T) {
		d, derr := ValidateDecision(`{
			"plan_type": "action",
			"analysis_complete": true,
			"final_answer": "Revenue grew 12% quarter over quarter."
		}`)
		require.Nil(t, derr)
		assert.True(t, d.AnalysisComplete)
		assert.Equal(t, "Revenue grew 12% quarter over quarter.", d.FinalAnswer)
	})

	t.Run("action plan with neither action nor completion is rejected", func(t *testing.T) {
		d, derr := ValidateDecision(`{"plan_type": "action", "analysis_complete": false}`)
		assert.Nil(t, d)
		require.NotNil(t, derr)
		assert.Equal(t, ErrCodeMissingAction, derr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		d, derr := ValidateDecision(`this is not json`)
		assert.Nil(t, d)
		require.NotNil(t, derr)
		assert.Equal(t, ErrCodeInputValidation, derr.Code)
	})

	t.Run("missing plan_type fails schema validation", func(t *testing.T) {
		d, derr := ValidateDecision(`{"reasoning_message": "no plan type"}`)
		assert.Nil(t, d)
		require.NotNil(t, derr)
		assert.Equal(t, ErrCodeValidation, derr.Code)
	})

	t.Run("unknown plan_type fails schema validation", func(t *testing.T) {
		d, derr := ValidateDecision(`{"plan_type": "improvise"}`)
		assert.Nil(t, d)
		require.NotNil(t, derr)
		assert.Equal(t, ErrCodeValidation, derr.Code)
	})

	t.Run("action without a name fails schema validation", func(t *testing.T) {
		d, derr := ValidateDecision(`{"plan_type": "action", "action": {"arguments": {}}}`)
		assert.Nil(t, d)
		require.NotNil(t, derr)
		assert.Equal(t, ErrCodeValidation, derr.Code)
	})
}
