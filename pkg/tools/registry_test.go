package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopExecutor() Executor {
	return ExecutorFunc(func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
		return &Result{}, nil
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Run("empty name is rejected", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(Descriptor{}, noopExecutor())
		assert.Error(t, err)
	})

	t.Run("broken args schema is rejected", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(Descriptor{
			Name:       "broken",
			ArgsSchema: json.RawMessage(`{not json`),
		}, noopExecutor())
		assert.Error(t, err)
	})

	t.Run("re-registration replaces the descriptor", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Descriptor{Name: "t", Description: "old"}, noopExecutor()))
		require.NoError(t, r.Register(Descriptor{Name: "t", Description: "new"}, noopExecutor()))

		desc, err := r.Resolve("t", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "new", desc.Description)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Descriptor{
		Name:      "create_data",
		PlanTypes: []string{"action"},
	}, noopExecutor()))
	require.NoError(t, r.Register(Descriptor{
		Name:         "export_report",
		Capabilities: []string{"exports"},
	}, noopExecutor()))

	t.Run("unknown tool", func(t *testing.T) {
		_, err := r.Resolve("no_such_tool", "action", nil)
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("plan type filtering", func(t *testing.T) {
		_, err := r.Resolve("create_data", "action", nil)
		assert.NoError(t, err)

		_, err = r.Resolve("create_data", "research", nil)
		assert.ErrorIs(t, err, ErrToolDisallowed)
	})

	t.Run("capability gating", func(t *testing.T) {
		_, err := r.Resolve("export_report", "action", nil)
		assert.ErrorIs(t, err, ErrToolDisallowed)

		_, err = r.Resolve("export_report", "action", []string{"exports"})
		assert.NoError(t, err)
	})
}

func TestRegistry_ListAndCatalog(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Descriptor{Name: "b_action_only", PlanTypes: []string{"action"}}, noopExecutor()))
	require.NoError(t, r.Register(Descriptor{Name: "a_research_only", PlanTypes: []string{"research"}}, noopExecutor()))
	require.NoError(t, r.Register(Descriptor{Name: "c_gated", Capabilities: []string{"admin"}}, noopExecutor()))

	t.Run("List filters by plan type and sorts", func(t *testing.T) {
		names := descriptorNames(r.List("action", nil))
		assert.Equal(t, []string{"b_action_only"}, names)
	})

	t.Run("Catalog is the deduplicated union", func(t *testing.T) {
		names := descriptorNames(r.Catalog(nil))
		assert.Equal(t, []string{"a_research_only", "b_action_only"}, names)
	})

	t.Run("Catalog includes capability-gated tools when granted", func(t *testing.T) {
		names := descriptorNames(r.Catalog([]string{"admin"}))
		assert.Equal(t, []string{"a_research_only", "b_action_only", "c_gated"}, names)
	})
}

func descriptorNames(descs []Descriptor) []string {
	out := make([]string, 0, len(descs))
	for _, d := range descs {
		out = append(out, d.Name)
	}
	return out
}
