package contexthub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilder_Build(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	newBuilder := func(records ...DataSourceRecord) *SchemaBuilder {
		b := NewSchemaBuilder(&fakeStore{dataSources: records})
		b.now = func() time.Time { return now }
		return b
	}

	t.Run("inactive sources are excluded by default", func(t *testing.T) {
		b := newBuilder(
			DataSourceRecord{ID: "ds1", Name: "live", Active: true},
			DataSourceRecord{ID: "ds2", Name: "stale", Active: false},
		)
		section, err := b.Build(ctx, "r1", SchemaParams{})
		require.NoError(t, err)
		require.Len(t, section.Sources, 1)
		assert.Equal(t, "live", section.Sources[0].Name)
	})

	t.Run("score ordering favors used recent tables", func(t *testing.T) {
		b := newBuilder(DataSourceRecord{
			ID: "ds1", Active: true,
			Tables: []TableRecord{
				{Name: "dusty", UsageCount: 1, LastUsedAt: now.AddDate(0, -6, 0), SuccessRate: 0.2},
				{Name: "hot", UsageCount: 40, LastUsedAt: now.Add(-24 * time.Hour), SuccessRate: 0.95},
				{Name: "failing", UsageCount: 5, LastUsedAt: now.Add(-24 * time.Hour), Failures: 30},
			},
		})
		section, err := b.Build(ctx, "r1", SchemaParams{})
		require.NoError(t, err)
		require.Len(t, section.Sources, 1)
		tables := section.Sources[0].Tables
		require.Len(t, tables, 3)
		assert.Equal(t, "hot", tables[0].Name)
		assert.Equal(t, "failing", tables[2].Name, "failure penalty should push it last")
	})

	t.Run("alphabetical sort", func(t *testing.T) {
		b := newBuilder(DataSourceRecord{
			ID: "ds1", Active: true,
			Tables: []TableRecord{{Name: "zebra"}, {Name: "Alpha"}},
		})
		section, err := b.Build(ctx, "r1", SchemaParams{Sort: SortAlphabetical})
		require.NoError(t, err)
		assert.Equal(t, "Alpha", section.Sources[0].Tables[0].Name)
	})

	t.Run("pattern filter", func(t *testing.T) {
		b := newBuilder(DataSourceRecord{
			ID: "ds1", Active: true,
			Tables: []TableRecord{{Name: "fct_orders"}, {Name: "dim_users"}, {Name: "fct_sessions"}},
		})
		section, err := b.Build(ctx, "r1", SchemaParams{Pattern: "^fct_"})
		require.NoError(t, err)
		require.Len(t, section.Sources[0].Tables, 2)
	})

	t.Run("invalid pattern errors", func(t *testing.T) {
		b := newBuilder(DataSourceRecord{ID: "ds1", Active: true})
		_, err := b.Build(ctx, "r1", SchemaParams{Pattern: "("})
		assert.Error(t, err)
	})

	t.Run("user overlays replace tables under user_required policy", func(t *testing.T) {
		rec := DataSourceRecord{
			ID: "ds1", Active: true, AuthPolicy: "user_required",
			Tables: []TableRecord{{Name: "orders", Columns: []ColumnSchema{{Name: "all_rows"}}}},
			UserOverlays: map[string]TableRecord{
				"orders": {Name: "orders", Columns: []ColumnSchema{{Name: "own_rows"}}},
			},
		}

		b := newBuilder(rec)
		section, err := b.Build(ctx, "r1", SchemaParams{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, "own_rows", section.Sources[0].Tables[0].Columns[0].Name)

		section, err = b.Build(ctx, "r1", SchemaParams{})
		require.NoError(t, err)
		assert.Equal(t, "all_rows", section.Sources[0].Tables[0].Columns[0].Name, "no user means canonical tables")
	})

	t.Run("data source and table name filters", func(t *testing.T) {
		b := newBuilder(
			DataSourceRecord{ID: "keep", Active: true, Tables: []TableRecord{{Name: "a"}, {Name: "b"}}},
			DataSourceRecord{ID: "skip", Active: true, Tables: []TableRecord{{Name: "c"}}},
		)
		section, err := b.Build(ctx, "r1", SchemaParams{
			DataSourceIDs: []string{"keep"},
			TableNames:    []string{"b"},
		})
		require.NoError(t, err)
		require.Len(t, section.Sources, 1)
		require.Len(t, section.Sources[0].Tables, 1)
		assert.Equal(t, "b", section.Sources[0].Tables[0].Name)
	})
}
