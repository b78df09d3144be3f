package contexthub

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSchemasSection_Render(t *testing.T) {
	t.Run("empty renders nothing", func(t *testing.T) {
		assert.Empty(t, SchemasSection{}.Render())
	})

	t.Run("sample plus index split", func(t *testing.T) {
		section := SchemasSection{
			SampleTables: 2,
			IndexLimit:   10,
			Sources: []SchemaSource{{
				Name:    "warehouse",
				Dialect: "postgres",
				Tables: []TableSchema{
					{Name: "orders", Columns: []ColumnSchema{{Name: "id", Type: "uuid", PK: true}}},
					{Name: "customers", Columns: []ColumnSchema{{Name: "order_id", Type: "uuid", FK: "orders.id"}}},
					{Name: "audit_log"},
					{Name: "sessions"},
				},
			}},
		}
		out := section.Render()
		assert.Contains(t, out, `<table name="orders">`)
		assert.Contains(t, out, `<table name="customers">`)
		assert.Contains(t, out, `pk="true"`)
		assert.Contains(t, out, `fk="orders.id"`)
		assert.NotContains(t, out, `<table name="audit_log">`)
		assert.Contains(t, out, `<table_index count="2">audit_log, sessions</table_index>`)
	})

	t.Run("markup in names is escaped", func(t *testing.T) {
		section := SchemasSection{Sources: []SchemaSource{{
			Name:   `x"><inject/>`,
			Tables: []TableSchema{{Name: "t<1>"}},
		}}}
		out := section.Render()
		assert.NotContains(t, out, "<inject/>")
		assert.Contains(t, out, "&lt;inject/&gt;")
		assert.Contains(t, out, "t&lt;1&gt;")
	})
}

func TestObservationsSection_Render(t *testing.T) {
	t.Run("never policy is omitted", func(t *testing.T) {
		section := ObservationsSection{Items: []Observation{
			{ToolName: "visible", Status: "success", Summary: "ok"},
			{ToolName: "hidden", Status: "success", Summary: "secret", ObservationPolicy: ObservationNever},
		}}
		out := section.Render()
		assert.Contains(t, out, `tool="visible"`)
		assert.NotContains(t, out, "hidden")
		assert.NotContains(t, out, "secret")
	})

	t.Run("only the most recent render", func(t *testing.T) {
		var items []Observation
		for _, name := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
			items = append(items, Observation{ToolName: name, Status: "success", Summary: name})
		}
		out := ObservationsSection{Items: items}.Render()
		assert.NotContains(t, out, `tool="one"`)
		assert.NotContains(t, out, `tool="two"`)
		assert.Contains(t, out, `tool="three"`)
		assert.Contains(t, out, `tool="seven"`)
	})

	t.Run("error code attribute", func(t *testing.T) {
		out := ObservationsSection{Items: []Observation{
			{ToolName: "t", Status: "error", ErrorCode: "execution_error", Summary: "boom"},
		}}.Render()
		assert.Contains(t, out, `error_code="execution_error"`)
	})

	t.Run("all filtered renders nothing", func(t *testing.T) {
		out := ObservationsSection{Items: []Observation{
			{ToolName: "t", ObservationPolicy: ObservationNever},
		}}.Render()
		assert.Empty(t, out)
	})
}

func TestMessagesSection_Render(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("role and timestamp prefix", func(t *testing.T) {
		out := MessagesSection{Messages: []HistoryMessage{
			{Role: "user", Content: "show revenue", Timestamp: ts},
			{Role: "assistant", Content: "here it is", Timestamp: ts.Add(time.Minute)},
		}}.Render()
		assert.Contains(t, out, "[2026-03-01T12:00:00Z] user: show revenue")
		assert.Contains(t, out, "[2026-03-01T12:01:00Z] assistant: here it is")
	})

	t.Run("long history is truncated with a marker", func(t *testing.T) {
		out := MessagesSection{Messages: []HistoryMessage{
			{Role: "user", Content: strings.Repeat("x", MessagesMaxChars+500), Timestamp: ts},
		}}.Render()
		assert.LessOrEqual(t, len(out), MessagesMaxChars+len("\n[...conversation history truncated]"))
		assert.Contains(t, out, "[...conversation history truncated]")
	})

	t.Run("truncation never splits a multi-byte rune", func(t *testing.T) {
		out := MessagesSection{Messages: []HistoryMessage{
			{Role: "user", Content: strings.Repeat("é", MessagesMaxChars), Timestamp: ts},
		}}.Render()
		assert.True(t, utf8.ValidString(out))
		assert.Contains(t, out, "[...conversation history truncated]")
	})
}

func TestResourcesSection_Render(t *testing.T) {
	section := ResourcesSection{
		SampleK:    1,
		IndexLimit: 10,
		Items: []Resource{
			{Name: "low", Kind: "doc", Body: "low body", Rank: 0.1},
			{Name: "high", Kind: "metric", Body: "high body", Rank: 0.9},
		},
	}
	out := section.Render()
	assert.Contains(t, out, `<resource name="high" kind="metric">high body</resource>`)
	assert.NotContains(t, out, "low body")
	assert.Contains(t, out, `<resource_index count="1">low</resource_index>`)
}
