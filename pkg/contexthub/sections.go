// Package contexthub builds, caches, and renders the layered planner
// context: static sections built once per turn and warm sections rebuilt on
// every loop iteration. Rendering is deterministic XML-like markup; all
// user-originated content is escaped so it cannot inject markup.
package contexthub

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Load modes for instructions.
const (
	LoadModeAlways      = "always"
	LoadModeIntelligent = "intelligent"
	LoadModeDisabled    = "disabled"
)

// Load reasons recorded on instruction items sent to the planner.
const (
	LoadReasonAlways = "always"
	LoadReasonFill   = "fill"
	// Search-match reasons are formatted as "search_match:<score>".
)

// Observation policies for tools.
const (
	ObservationOnTrigger = "on_trigger"
	ObservationNever     = "never"
)

// MessagesMaxChars caps the rendered conversation history.
const MessagesMaxChars = 8000

// ObservationsRendered caps observations included in a rendered prompt.
const ObservationsRendered = 5

// Section is a typed, renderable context fragment.
type Section interface {
	Render() string
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// ── Schemas ────────────────────────────────────────────────────────────

// ColumnSchema describes one table column.
type ColumnSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
	PK   bool   `json:"pk,omitempty"`
	FK   string `json:"fk,omitempty"`
}

// TableSchema describes one ranked table of a data source.
type TableSchema struct {
	Name        string
	Columns     []ColumnSchema
	Score       float64
	UsageCount  int
	LastUsedAt  time.Time
	SuccessRate float64
	Feedback    float64
	Centrality  float64
	Failures    int
}

// SchemaSource is one data source with its ranked tables.
type SchemaSource struct {
	ID      string
	Name    string
	Dialect string
	Tables  []TableSchema
}

// SchemasSection is the ordered list of data sources sent to the planner.
type SchemasSection struct {
	Sources []SchemaSource
	// SampleTables and IndexLimit control the combined render: the top-K
	// ranked tables render fully, the rest appear as a name-only index.
	SampleTables int
	IndexLimit   int
}

// Render produces the combined form: a full sample of the top-K ranked
// tables per source plus a compact index of remaining table names.
func (s SchemasSection) Render() string {
	if len(s.Sources) == 0 {
		return ""
	}
	sampleK := s.SampleTables
	if sampleK <= 0 {
		sampleK = 10
	}
	indexLimit := s.IndexLimit
	if indexLimit <= 0 {
		indexLimit = 100
	}

	var b strings.Builder
	b.WriteString("<schemas>\n")
	for _, src := range s.Sources {
		fmt.Fprintf(&b, "  <data_source name=%q dialect=%q>\n", escape(src.Name), escape(src.Dialect))
		sample := src.Tables
		if len(sample) > sampleK {
			sample = sample[:sampleK]
		}
		for _, t := range sample {
			fmt.Fprintf(&b, "    <table name=%q>\n", escape(t.Name))
			for _, col := range t.Columns {
				fmt.Fprintf(&b, "      <column name=%q type=%q", escape(col.Name), escape(col.Type))
				if col.PK {
					b.WriteString(` pk="true"`)
				}
				if col.FK != "" {
					fmt.Fprintf(&b, " fk=%q", escape(col.FK))
				}
				b.WriteString("/>\n")
			}
			b.WriteString("    </table>\n")
		}
		if len(src.Tables) > sampleK {
			rest := src.Tables[sampleK:]
			if len(rest) > indexLimit {
				rest = rest[:indexLimit]
			}
			names := make([]string, len(rest))
			for i, t := range rest {
				names[i] = escape(t.Name)
			}
			fmt.Fprintf(&b, "    <table_index count=\"%d\">%s</table_index>\n",
				len(src.Tables)-sampleK, strings.Join(names, ", "))
		}
		b.WriteString("  </data_source>\n")
	}
	b.WriteString("</schemas>")
	return b.String()
}

// ── Instructions ───────────────────────────────────────────────────────

// InstructionItem is one instruction loaded into the planner context.
type InstructionItem struct {
	ID         string
	Text       string
	Category   string
	LoadMode   string
	LoadReason string
	UsageCount int
}

// InstructionsSection is the ordered instruction list.
type InstructionsSection struct {
	Items []InstructionItem
}

// Render produces instruction markup tagged with category and load reason.
func (s InstructionsSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<instructions>\n")
	for _, it := range s.Items {
		fmt.Fprintf(&b, "  <instruction category=%q load_reason=%q>%s</instruction>\n",
			escape(it.Category), escape(it.LoadReason), escape(it.Text))
	}
	b.WriteString("</instructions>")
	return b.String()
}

// ── Messages ───────────────────────────────────────────────────────────

// HistoryMessage is one prior conversation message.
type HistoryMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
	Mentions  []string
}

// MessagesSection is the chronological conversation history.
type MessagesSection struct {
	Messages []HistoryMessage
}

// Render produces role-tagged, timestamp-prefixed lines truncated to
// MessagesMaxChars with an explicit marker.
func (s MessagesSection) Render() string {
	if len(s.Messages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<messages>\n")
	for _, m := range s.Messages {
		fmt.Fprintf(&b, "[%s] %s: %s\n",
			m.Timestamp.UTC().Format(time.RFC3339), m.Role, escape(m.Content))
	}
	b.WriteString("</messages>")
	out := b.String()
	if len(out) > MessagesMaxChars {
		cut := MessagesMaxChars
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut] + "\n[...conversation history truncated]"
	}
	return out
}

// ── Observations ───────────────────────────────────────────────────────

// Observation records one tool execution from earlier in this turn.
type Observation struct {
	ToolName          string
	Arguments         map[string]interface{}
	Summary           string
	Status            string
	ErrorCode         string
	AnalysisComplete  bool
	FinalAnswer       string
	ObservationPolicy string
}

// ObservationsSection is the ring of prior tool executions this turn.
type ObservationsSection struct {
	Items []Observation
}

// Render includes only the most recent observations and omits tools with an
// observation policy of never.
func (s ObservationsSection) Render() string {
	visible := make([]Observation, 0, len(s.Items))
	for _, o := range s.Items {
		if o.ObservationPolicy == ObservationNever {
			continue
		}
		visible = append(visible, o)
	}
	if len(visible) > ObservationsRendered {
		visible = visible[len(visible)-ObservationsRendered:]
	}
	if len(visible) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<observations>\n")
	for _, o := range visible {
		fmt.Fprintf(&b, "  <observation tool=%q status=%q", escape(o.ToolName), escape(o.Status))
		if o.ErrorCode != "" {
			fmt.Fprintf(&b, " error_code=%q", escape(o.ErrorCode))
		}
		fmt.Fprintf(&b, ">%s</observation>\n", escape(o.Summary))
	}
	b.WriteString("</observations>")
	return b.String()
}

// ── Resources ──────────────────────────────────────────────────────────

// Resource is one repository resource (saved metric, doc, dataset note).
type Resource struct {
	ID   string
	Name string
	Kind string
	Body string
	Rank float64
}

// ResourcesSection mirrors the schemas sample/index pattern for repository
// resources.
type ResourcesSection struct {
	Items      []Resource
	SampleK    int
	IndexLimit int
}

// Render produces a full sample of the top-ranked resources and a compact
// name index for the rest.
func (s ResourcesSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	sampleK := s.SampleK
	if sampleK <= 0 {
		sampleK = 10
	}
	indexLimit := s.IndexLimit
	if indexLimit <= 0 {
		indexLimit = 100
	}
	items := make([]Resource, len(s.Items))
	copy(items, s.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Rank > items[j].Rank })

	var b strings.Builder
	b.WriteString("<resources>\n")
	sample := items
	if len(sample) > sampleK {
		sample = sample[:sampleK]
	}
	for _, r := range sample {
		fmt.Fprintf(&b, "  <resource name=%q kind=%q>%s</resource>\n",
			escape(r.Name), escape(r.Kind), escape(r.Body))
	}
	if len(items) > sampleK {
		rest := items[sampleK:]
		if len(rest) > indexLimit {
			rest = rest[:indexLimit]
		}
		names := make([]string, len(rest))
		for i, r := range rest {
			names[i] = escape(r.Name)
		}
		fmt.Fprintf(&b, "  <resource_index count=\"%d\">%s</resource_index>\n",
			len(items)-sampleK, strings.Join(names, ", "))
	}
	b.WriteString("</resources>")
	return b.String()
}

// ── Simple carriers ────────────────────────────────────────────────────

// Mention is an @-reference from the user prompt.
type Mention struct {
	Kind  string // widget, file, entity, datasource
	ID    string
	Label string
}

// MentionsSection carries prompt mentions.
type MentionsSection struct {
	Items []Mention
}

// Render produces mention markup.
func (s MentionsSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<mentions>\n")
	for _, m := range s.Items {
		fmt.Fprintf(&b, "  <mention kind=%q id=%q>%s</mention>\n",
			escape(m.Kind), escape(m.ID), escape(m.Label))
	}
	b.WriteString("</mentions>")
	return b.String()
}

// Entity is a resolved domain entity referenced by the conversation.
type Entity struct {
	Name        string
	Kind        string
	Description string
}

// EntitiesSection carries resolved entities.
type EntitiesSection struct {
	Items []Entity
}

// Render produces entity markup.
func (s EntitiesSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<entities>\n")
	for _, e := range s.Items {
		fmt.Fprintf(&b, "  <entity name=%q kind=%q>%s</entity>\n",
			escape(e.Name), escape(e.Kind), escape(e.Description))
	}
	b.WriteString("</entities>")
	return b.String()
}

// FileRef is an uploaded file owned by the report.
type FileRef struct {
	ID          string
	Name        string
	ContentType string
	Summary     string
}

// FilesSection carries report files.
type FilesSection struct {
	Items []FileRef
}

// Render produces file markup.
func (s FilesSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<files>\n")
	for _, f := range s.Items {
		fmt.Fprintf(&b, "  <file name=%q content_type=%q>%s</file>\n",
			escape(f.Name), escape(f.ContentType), escape(f.Summary))
	}
	b.WriteString("</files>")
	return b.String()
}

// WidgetRef is an existing widget in the report.
type WidgetRef struct {
	ID        string
	Title     string
	StepCount int
}

// WidgetsSection carries existing widgets.
type WidgetsSection struct {
	Items []WidgetRef
}

// Render produces widget markup.
func (s WidgetsSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<widgets>\n")
	for _, w := range s.Items {
		fmt.Fprintf(&b, "  <widget id=%q steps=\"%d\">%s</widget>\n",
			escape(w.ID), w.StepCount, escape(w.Title))
	}
	b.WriteString("</widgets>")
	return b.String()
}

// QueryRef is a previously executed query.
type QueryRef struct {
	ID  string
	SQL string
}

// QueriesSection carries prior queries.
type QueriesSection struct {
	Items []QueryRef
}

// Render produces query markup.
func (s QueriesSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<queries>\n")
	for _, q := range s.Items {
		fmt.Fprintf(&b, "  <query id=%q>%s</query>\n", escape(q.ID), escape(q.SQL))
	}
	b.WriteString("</queries>")
	return b.String()
}

// CodeSnippet is code attached to the report or produced during a turn.
type CodeSnippet struct {
	Label    string
	Language string
	Body     string
}

// CodeSection carries code snippets.
type CodeSection struct {
	Snippets []CodeSnippet
}

// Render produces code markup.
func (s CodeSection) Render() string {
	if len(s.Snippets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<code>\n")
	for _, c := range s.Snippets {
		fmt.Fprintf(&b, "  <snippet label=%q language=%q>%s</snippet>\n",
			escape(c.Label), escape(c.Language), escape(c.Body))
	}
	b.WriteString("</code>")
	return b.String()
}
