package contexthub

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/datalens-ai/datalens/pkg/tokens"
)

// DefaultObservationsMax is the fixed cap applied to the warm observations
// section before storing.
const DefaultObservationsMax = 8

// Params pins a hub to one turn.
type Params struct {
	ReportID     string
	CompletionID string // head user completion — excluded from history
	UserID       string
	Query        string
	ModelID      string
	BuildID      string
	Mentions     []Mention

	MaxInstructions int
	ObservationsMax int
	SampleTables    int
	IndexLimit      int
}

// StaticSections are built once per turn.
type StaticSections struct {
	Schemas      SchemasSection
	Instructions InstructionsSection
	Resources    ResourcesSection
	Code         CodeSection
	Files        FilesSection
}

// WarmSections are rebuilt on every loop iteration.
type WarmSections struct {
	Messages     MessagesSection
	Observations ObservationsSection
	Widgets      WidgetsSection
	Queries      QueriesSection
	Mentions     MentionsSection
	Entities     EntitiesSection
}

// SectionMeta records the size of one rendered section.
type SectionMeta struct {
	Tokens int `json:"tokens"`
	Chars  int `json:"chars"`
	Items  int `json:"items"`
}

// Metadata aggregates per-section sizes and build timing.
type Metadata struct {
	Sections      map[string]SectionMeta `json:"sections"`
	TotalTokens   int                    `json:"total_tokens"`
	BuildDuration time.Duration          `json:"build_duration"`
}

// View is a read-only composite of the hub's caches.
type View struct {
	Static StaticSections
	Warm   WarmSections
	Meta   Metadata
}

// Hub orchestrates the section builders and caches their results. Owned by
// one turn; only the loop task mutates it.
type Hub struct {
	params  Params
	counter *tokens.Counter

	schemaBuilder      *SchemaBuilder
	instructionBuilder *InstructionBuilder
	messageBuilder     *MessageBuilder
	resourceBuilder    *ResourceBuilder
	fileBuilder        *FileBuilder
	widgetBuilder      *WidgetBuilder
	queryBuilder       *QueryBuilder
	codeBuilder        *CodeBuilder
	entityBuilder      *EntityBuilder
	mentionBuilder     *MentionBuilder

	// Observations accumulates across iterations; the loop records tool
	// results here and RefreshWarm snapshots it into the warm cache.
	Observations *ObservationBuilder

	mu     sync.RWMutex
	static StaticSections
	warm   WarmSections
	meta   Metadata
}

// New creates a hub over the given store for one turn.
func New(store Store, counter *tokens.Counter, params Params) *Hub {
	if params.ObservationsMax <= 0 {
		params.ObservationsMax = DefaultObservationsMax
	}
	return &Hub{
		params:             params,
		counter:            counter,
		schemaBuilder:      NewSchemaBuilder(store),
		instructionBuilder: NewInstructionBuilder(store),
		messageBuilder:     NewMessageBuilder(store),
		resourceBuilder:    NewResourceBuilder(store, params.SampleTables, params.IndexLimit),
		fileBuilder:        NewFileBuilder(store),
		widgetBuilder:      NewWidgetBuilder(store),
		queryBuilder:       NewQueryBuilder(store),
		codeBuilder:        NewCodeBuilder(store),
		entityBuilder:      NewEntityBuilder(store),
		mentionBuilder:     NewMentionBuilder(),
		Observations:       NewObservationBuilder(),
	}
}

// PrimeStatic runs all static builders in parallel, storing any
// non-error results. Survives per-builder failures: a failed builder
// leaves an empty section and the turn continues.
func (h *Hub) PrimeStatic(ctx context.Context) {
	start := time.Now()
	var next StaticSections
	runParallel(
		func() {
			section, err := h.schemaBuilder.Build(ctx, h.params.ReportID, SchemaParams{
				UserID:       h.params.UserID,
				SampleTables: h.params.SampleTables,
				IndexLimit:   h.params.IndexLimit,
			})
			if err != nil {
				slog.Warn("schema builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Schemas = section
		},
		func() {
			section, err := h.instructionBuilder.Build(ctx, h.params.ReportID, InstructionParams{
				BuildID:      h.params.BuildID,
				Query:        h.params.Query,
				MaxInContext: h.params.MaxInstructions,
			})
			if err != nil {
				slog.Warn("instruction builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Instructions = section
		},
		func() {
			section, err := h.resourceBuilder.Build(ctx, h.params.ReportID)
			if err != nil {
				slog.Warn("resource builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Resources = section
		},
		func() {
			section, err := h.codeBuilder.Build(ctx, h.params.ReportID)
			if err != nil {
				slog.Warn("code builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Code = section
		},
		func() {
			section, err := h.fileBuilder.Build(ctx, h.params.ReportID)
			if err != nil {
				slog.Warn("file builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Files = section
		},
	)

	h.mu.Lock()
	h.static = next
	h.mu.Unlock()
	h.recomputeMeta(time.Since(start))
}

// RefreshWarm runs all warm builders in parallel and applies the
// observations cap before storing. Called on every loop iteration.
func (h *Hub) RefreshWarm(ctx context.Context) {
	start := time.Now()
	var next WarmSections
	runParallel(
		func() {
			section, err := h.messageBuilder.Build(ctx, h.params.ReportID, h.params.CompletionID)
			if err != nil {
				slog.Warn("message builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Messages = section
		},
		func() {
			section := h.Observations.Build()
			if len(section.Items) > h.params.ObservationsMax {
				section.Items = section.Items[len(section.Items)-h.params.ObservationsMax:]
			}
			next.Observations = section
		},
		func() {
			section, err := h.widgetBuilder.Build(ctx, h.params.ReportID)
			if err != nil {
				slog.Warn("widget builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Widgets = section
		},
		func() {
			section, err := h.queryBuilder.Build(ctx, h.params.ReportID)
			if err != nil {
				slog.Warn("query builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Queries = section
		},
		func() {
			section, err := h.entityBuilder.Build(ctx, h.params.ReportID, h.params.Query)
			if err != nil {
				slog.Warn("entity builder failed", "report_id", h.params.ReportID, "error", err)
				return
			}
			next.Entities = section
		},
		func() {
			section, _ := h.mentionBuilder.Build(ctx, h.params.Mentions)
			next.Mentions = section
		},
	)

	h.mu.Lock()
	h.warm = next
	h.mu.Unlock()
	h.recomputeMeta(time.Since(start))
}

// View returns a read-only composite of the caches. Pure.
func (h *Hub) View() View {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return View{Static: h.static, Warm: h.warm, Meta: h.meta}
}

// RenderPrompt assembles the full planner context text from a view in a
// fixed section order. Deterministic per view.
func RenderPrompt(v View) string {
	parts := make([]string, 0, 11)
	for _, section := range []Section{
		v.Static.Schemas,
		v.Static.Resources,
		v.Static.Instructions,
		v.Static.Code,
		v.Static.Files,
		v.Warm.Messages,
		v.Warm.Mentions,
		v.Warm.Entities,
		v.Warm.Widgets,
		v.Warm.Queries,
		v.Warm.Observations,
	} {
		if rendered := section.Render(); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (h *Hub) recomputeMeta(buildDuration time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	model := h.params.ModelID
	sections := map[string]SectionMeta{
		"schemas":      h.sectionMeta(h.static.Schemas, len(h.static.Schemas.Sources), model),
		"instructions": h.sectionMeta(h.static.Instructions, len(h.static.Instructions.Items), model),
		"resources":    h.sectionMeta(h.static.Resources, len(h.static.Resources.Items), model),
		"code":         h.sectionMeta(h.static.Code, len(h.static.Code.Snippets), model),
		"files":        h.sectionMeta(h.static.Files, len(h.static.Files.Items), model),
		"messages":     h.sectionMeta(h.warm.Messages, len(h.warm.Messages.Messages), model),
		"observations": h.sectionMeta(h.warm.Observations, len(h.warm.Observations.Items), model),
		"widgets":      h.sectionMeta(h.warm.Widgets, len(h.warm.Widgets.Items), model),
		"queries":      h.sectionMeta(h.warm.Queries, len(h.warm.Queries.Items), model),
		"mentions":     h.sectionMeta(h.warm.Mentions, len(h.warm.Mentions.Items), model),
		"entities":     h.sectionMeta(h.warm.Entities, len(h.warm.Entities.Items), model),
	}
	total := 0
	for _, m := range sections {
		total += m.Tokens
	}
	h.meta = Metadata{Sections: sections, TotalTokens: total, BuildDuration: buildDuration}
}

func (h *Hub) sectionMeta(s Section, items int, model string) SectionMeta {
	rendered := s.Render()
	return SectionMeta{
		Tokens: h.counter.Count(rendered, model),
		Chars:  len(rendered),
		Items:  items,
	}
}

func runParallel(fns ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func(f func()) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Warn("context builder panicked", "panic", r)
				}
			}()
			f()
		}(fn)
	}
	wg.Wait()
}
