package contexthub

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/pkg/tokens"
)

func populatedStore() *fakeStore {
	return &fakeStore{
		dataSources: []DataSourceRecord{{
			ID: "ds1", Name: "warehouse", Dialect: "postgres", Active: true,
			Tables: []TableRecord{{Name: "orders", Columns: []ColumnSchema{{Name: "id", Type: "uuid"}}}},
		}},
		instructions: []InstructionRecord{{ID: "i1", Text: "prefer bar charts", LoadMode: LoadModeAlways}},
		messages: []MessageRecord{
			{Role: "user", Content: "earlier question", CreatedAt: time.Now().Add(-time.Hour)},
		},
		resources: []Resource{{Name: "kpi-doc", Kind: "doc", Body: "definitions"}},
		widgets:   []WidgetRef{{ID: "w1", Title: "Revenue", StepCount: 1}},
		queries:   []QueryRef{{ID: "q1", SQL: "select 1"}},
	}
}

func newTestHub(store Store) *Hub {
	return New(store, tokens.NewCounter(), Params{
		ReportID:     "r1",
		CompletionID: "c1",
		Query:        "revenue",
		ModelID:      "gpt-4o",
	})
}

func TestHub_PrimeAndRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("populates static and warm caches", func(t *testing.T) {
		hub := newTestHub(populatedStore())
		hub.PrimeStatic(ctx)
		hub.RefreshWarm(ctx)

		v := hub.View()
		assert.Len(t, v.Static.Schemas.Sources, 1)
		assert.Len(t, v.Static.Instructions.Items, 1)
		assert.Len(t, v.Warm.Messages.Messages, 1)
		assert.Len(t, v.Warm.Widgets.Items, 1)
		assert.Len(t, v.Warm.Queries.Items, 1)
		assert.Greater(t, v.Meta.TotalTokens, 0)
	})

	t.Run("store failures leave empty sections instead of failing the turn", func(t *testing.T) {
		hub := newTestHub(&fakeStore{fail: true})
		hub.PrimeStatic(ctx)
		hub.RefreshWarm(ctx)

		v := hub.View()
		assert.Empty(t, v.Static.Schemas.Sources)
		assert.Empty(t, v.Static.Instructions.Items)
		assert.Empty(t, v.Warm.Messages.Messages)
	})

	t.Run("observations accumulate and are capped on refresh", func(t *testing.T) {
		hub := newTestHub(&fakeStore{})
		for i := 0; i < DefaultObservationsMax+3; i++ {
			hub.Observations.Add(Observation{
				ToolName: fmt.Sprintf("tool-%d", i),
				Status:   "success",
				Summary:  fmt.Sprintf("run %d", i),
			})
		}
		hub.RefreshWarm(ctx)

		v := hub.View()
		require.Len(t, v.Warm.Observations.Items, DefaultObservationsMax)
		assert.Equal(t, "tool-3", v.Warm.Observations.Items[0].ToolName, "oldest beyond the cap are dropped")
	})

	t.Run("refresh picks up new warm rows while static stays cached", func(t *testing.T) {
		store := populatedStore()
		hub := newTestHub(store)
		hub.PrimeStatic(ctx)
		hub.RefreshWarm(ctx)

		store.widgets = append(store.widgets, WidgetRef{ID: "w2", Title: "Churn"})
		store.instructions = append(store.instructions, InstructionRecord{ID: "i2", Text: "late", LoadMode: LoadModeAlways})
		hub.RefreshWarm(ctx)

		v := hub.View()
		assert.Len(t, v.Warm.Widgets.Items, 2)
		assert.Len(t, v.Static.Instructions.Items, 1, "static sections rebuild only on prime")
	})
}

func TestRenderPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("sections appear in the fixed order", func(t *testing.T) {
		hub := newTestHub(populatedStore())
		hub.PrimeStatic(ctx)
		hub.Observations.Add(Observation{ToolName: "probe", Status: "success", Summary: "done"})
		hub.RefreshWarm(ctx)

		prompt := RenderPrompt(hub.View())
		offsets := []int{
			strings.Index(prompt, "<schemas>"),
			strings.Index(prompt, "<resources>"),
			strings.Index(prompt, "<instructions>"),
			strings.Index(prompt, "<messages>"),
			strings.Index(prompt, "<widgets>"),
			strings.Index(prompt, "<queries>"),
			strings.Index(prompt, "<observations>"),
		}
		for i, off := range offsets {
			require.GreaterOrEqual(t, off, 0, "section %d missing", i)
			if i > 0 {
				assert.Greater(t, off, offsets[i-1])
			}
		}
	})

	t.Run("empty sections are skipped without stray separators", func(t *testing.T) {
		prompt := RenderPrompt(View{})
		assert.Empty(t, prompt)

		hub := newTestHub(&fakeStore{widgets: []WidgetRef{{ID: "w1", Title: "Only"}}})
		hub.RefreshWarm(ctx)
		prompt = RenderPrompt(hub.View())
		assert.True(t, strings.HasPrefix(prompt, "<widgets>"))
		assert.False(t, strings.Contains(prompt, "\n\n\n"))
	})

	t.Run("deterministic per view", func(t *testing.T) {
		hub := newTestHub(populatedStore())
		hub.PrimeStatic(ctx)
		hub.RefreshWarm(ctx)
		v := hub.View()
		assert.Equal(t, RenderPrompt(v), RenderPrompt(v))
	})
}
