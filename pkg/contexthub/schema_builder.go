package contexthub

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Table-score weights. The composite favors tables the analyst actually
// uses, with a recency decay and a penalty for repeated query failures.
const (
	scoreSuccessWeight    = 1.0
	scoreFeedbackWeight   = 0.5
	scoreCentralityWeight = 0.75
	scoreFailurePenalty   = 0.25
	recencyHalfLifeDays   = 14.0
)

// Schema sort orders.
const (
	SortByScore      = "score"
	SortAlphabetical = "alpha"
	SortByUsage      = "usage"
	SortByCentrality = "centrality"
)

// SchemaParams filters and orders the schemas section.
type SchemaParams struct {
	DataSourceIDs []string
	TableNames    []string
	Pattern       string // regex over table names
	Sort          string // score | alpha | usage | centrality (default score)
	ActiveOnly    *bool  // default true
	UserID        string // enables user overlays under user_required policies
	SampleTables  int
	IndexLimit    int
}

// SchemaBuilder materializes the schemas section from storage.
type SchemaBuilder struct {
	store Store
	now   func() time.Time
}

// NewSchemaBuilder creates a schema builder.
func NewSchemaBuilder(store Store) *SchemaBuilder {
	return &SchemaBuilder{store: store, now: time.Now}
}

// Build joins canonical tables with optional per-user overlays, scores and
// orders them, and applies the requested filters.
func (b *SchemaBuilder) Build(ctx context.Context, reportID string, p SchemaParams) (SchemasSection, error) {
	activeOnly := true
	if p.ActiveOnly != nil {
		activeOnly = *p.ActiveOnly
	}

	records, err := b.store.ListDataSources(ctx, reportID, activeOnly)
	if err != nil {
		return SchemasSection{}, fmt.Errorf("list data sources: %w", err)
	}

	var pattern *regexp.Regexp
	if p.Pattern != "" {
		pattern, err = regexp.Compile(p.Pattern)
		if err != nil {
			return SchemasSection{}, fmt.Errorf("invalid table pattern %q: %w", p.Pattern, err)
		}
	}

	wantIDs := toSet(p.DataSourceIDs)
	wantTables := toSet(p.TableNames)

	section := SchemasSection{
		SampleTables: p.SampleTables,
		IndexLimit:   p.IndexLimit,
	}
	for _, rec := range records {
		if len(wantIDs) > 0 && !wantIDs[rec.ID] {
			continue
		}
		tables := b.resolveTables(rec, p.UserID)

		out := make([]TableSchema, 0, len(tables))
		for _, t := range tables {
			if len(wantTables) > 0 && !wantTables[t.Name] {
				continue
			}
			if pattern != nil && !pattern.MatchString(t.Name) {
				continue
			}
			out = append(out, TableSchema{
				Name:        t.Name,
				Columns:     t.Columns,
				Score:       b.scoreTable(t),
				UsageCount:  t.UsageCount,
				LastUsedAt:  t.LastUsedAt,
				SuccessRate: t.SuccessRate,
				Feedback:    t.Feedback,
				Centrality:  t.Centrality,
				Failures:    t.Failures,
			})
		}
		sortTables(out, p.Sort)
		section.Sources = append(section.Sources, SchemaSource{
			ID:      rec.ID,
			Name:    rec.Name,
			Dialect: rec.Dialect,
			Tables:  out,
		})
	}
	return section, nil
}

// resolveTables applies per-user overlays when the data source requires a
// user-scoped view and a user is present.
func (b *SchemaBuilder) resolveTables(rec DataSourceRecord, userID string) []TableRecord {
	if rec.AuthPolicy != "user_required" || userID == "" || len(rec.UserOverlays) == 0 {
		return rec.Tables
	}
	out := make([]TableRecord, 0, len(rec.Tables))
	for _, t := range rec.Tables {
		if overlay, ok := rec.UserOverlays[t.Name]; ok {
			out = append(out, overlay)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// scoreTable computes usage×recency + success_rate + feedback +
// structural_signal − failure_penalty.
func (b *SchemaBuilder) scoreTable(t TableRecord) float64 {
	recency := 0.0
	if !t.LastUsedAt.IsZero() {
		days := b.now().Sub(t.LastUsedAt).Hours() / 24
		if days < 0 {
			days = 0
		}
		recency = recencyHalfLifeDays / (recencyHalfLifeDays + days)
	}
	return float64(t.UsageCount)*recency +
		scoreSuccessWeight*t.SuccessRate +
		scoreFeedbackWeight*t.Feedback +
		scoreCentralityWeight*t.Centrality -
		scoreFailurePenalty*float64(t.Failures)
}

func sortTables(tables []TableSchema, order string) {
	switch order {
	case SortAlphabetical:
		sort.SliceStable(tables, func(i, j int) bool {
			return strings.ToLower(tables[i].Name) < strings.ToLower(tables[j].Name)
		})
	case SortByUsage:
		sort.SliceStable(tables, func(i, j int) bool {
			return tables[i].UsageCount > tables[j].UsageCount
		})
	case SortByCentrality:
		sort.SliceStable(tables, func(i, j int) bool {
			return tables[i].Centrality > tables[j].Centrality
		})
	default: // SortByScore
		sort.SliceStable(tables, func(i, j int) bool {
			return tables[i].Score > tables[j].Score
		})
	}
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
