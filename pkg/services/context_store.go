package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/models"
)

// ContextStore implements contexthub.Store over the ent client, translating
// persisted rows into the builder-facing record shapes.
type ContextStore struct {
	client *ent.Client
}

// NewContextStore creates a new ContextStore
func NewContextStore(client *ent.Client) *ContextStore {
	return &ContextStore{client: client}
}

// ListDataSources returns the report's data sources with decoded table
// metadata
func (s *ContextStore) ListDataSources(ctx context.Context, reportID string, activeOnly bool) ([]contexthub.DataSourceRecord, error) {
	q := s.client.DataSource.Query().
		Where(datasource.ReportID(reportID)).
		Order(ent.Asc(datasource.FieldCreatedAt))
	if activeOnly {
		q = q.Where(datasource.Active(true))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list data sources: %w", err)
	}

	out := make([]contexthub.DataSourceRecord, 0, len(rows))
	for _, ds := range rows {
		record := contexthub.DataSourceRecord{
			ID:         ds.ID,
			Name:       ds.Name,
			Dialect:    ds.Dialect,
			Active:     ds.Active,
			AuthPolicy: ds.AuthPolicy,
		}
		for _, raw := range ds.Tables {
			table, err := decodeTable(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to decode table of %s: %w", ds.ID, err)
			}
			record.Tables = append(record.Tables, table)
		}
		if len(ds.UserOverlays) > 0 {
			record.UserOverlays = make(map[string]contexthub.TableRecord, len(ds.UserOverlays))
			for name, raw := range ds.UserOverlays {
				rawMap, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				table, err := decodeTable(rawMap)
				if err != nil {
					return nil, fmt.Errorf("failed to decode overlay %s of %s: %w", name, ds.ID, err)
				}
				record.UserOverlays[name] = table
			}
		}
		out = append(out, record)
	}
	return out, nil
}

// ListInstructions returns the report's instructions
func (s *ContextStore) ListInstructions(ctx context.Context, reportID string) ([]contexthub.InstructionRecord, error) {
	rows, err := s.client.Instruction.Query().
		Where(instruction.ReportID(reportID)).
		Order(ent.Asc(instruction.FieldPosition), ent.Asc(instruction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructions: %w", err)
	}
	out := make([]contexthub.InstructionRecord, 0, len(rows))
	for _, r := range rows {
		buildID := ""
		if r.BuildID != nil {
			buildID = *r.BuildID
		}
		out = append(out, contexthub.InstructionRecord{
			ID:         r.ID,
			Text:       r.Text,
			Category:   r.Category,
			LoadMode:   string(r.LoadMode),
			BuildID:    buildID,
			UsageCount: r.UsageCount,
			Position:   r.Position,
		})
	}
	return out, nil
}

// ListMessages renders prior completions as conversation messages. User
// completions contribute their prompt content; system completions the
// transcript rebuilt from their blocks.
func (s *ContextStore) ListMessages(ctx context.Context, reportID, excludeCompletionID string) ([]contexthub.MessageRecord, error) {
	q := s.client.Completion.Query().
		Where(completion.ReportID(reportID)).
		Order(ent.Asc(completion.FieldTurnIndex), ent.Asc(completion.FieldCreatedAt))
	if excludeCompletionID != "" {
		q = q.Where(
			completion.IDNEQ(excludeCompletionID),
			completion.Or(
				completion.ParentIDIsNil(),
				completion.ParentIDNEQ(excludeCompletionID),
			),
		)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]contexthub.MessageRecord, 0, len(rows))
	for _, c := range rows {
		record := contexthub.MessageRecord{
			Role:      string(c.Role),
			CreatedAt: c.CreatedAt,
		}
		switch c.Role {
		case completion.RoleUser:
			var prompt models.Prompt
			if err := remarshal(c.Prompt, &prompt); err == nil {
				record.Content = prompt.Content
				for _, m := range prompt.Mentions {
					record.Mentions = append(record.Mentions, m.Label)
				}
			}
		case completion.RoleSystem:
			record.Content = payloadContent(c.Completion)
		}
		if record.Content == "" {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

// ListResources returns repository resources. The data model carries no
// resource entity yet, so the section stays empty when built from storage.
func (s *ContextStore) ListResources(ctx context.Context, reportID string) ([]contexthub.Resource, error) {
	return nil, nil
}

// ListFiles returns report files. No file entity exists in the data model
// yet.
func (s *ContextStore) ListFiles(ctx context.Context, reportID string) ([]contexthub.FileRef, error) {
	return nil, nil
}

// ListWidgets returns the report's widgets with step counts
func (s *ContextStore) ListWidgets(ctx context.Context, reportID string) ([]contexthub.WidgetRef, error) {
	rows, err := NewArtifactService(s.client).ListWidgets(ctx, reportID)
	if err != nil {
		return nil, err
	}
	out := make([]contexthub.WidgetRef, 0, len(rows))
	for _, w := range rows {
		out = append(out, contexthub.WidgetRef{
			ID:        w.ID,
			Title:     w.Title,
			StepCount: len(w.Edges.Steps),
		})
	}
	return out, nil
}

// ListQueries returns the report's prior queries
func (s *ContextStore) ListQueries(ctx context.Context, reportID string) ([]contexthub.QueryRef, error) {
	rows, err := NewArtifactService(s.client).ListQueries(ctx, reportID)
	if err != nil {
		return nil, err
	}
	out := make([]contexthub.QueryRef, 0, len(rows))
	for _, q := range rows {
		out = append(out, contexthub.QueryRef{ID: q.ID, SQL: q.SQL})
	}
	return out, nil
}

// ListCode returns the code of the report's widget steps
func (s *ContextStore) ListCode(ctx context.Context, reportID string) ([]contexthub.CodeSnippet, error) {
	widgets, err := NewArtifactService(s.client).ListWidgets(ctx, reportID)
	if err != nil {
		return nil, err
	}
	var out []contexthub.CodeSnippet
	for _, w := range widgets {
		for _, st := range w.Edges.Steps {
			if st.Code == "" {
				continue
			}
			out = append(out, contexthub.CodeSnippet{
				Label:    w.Title,
				Language: "python",
				Body:     st.Code,
			})
		}
	}
	return out, nil
}

// ListEntities resolves query tokens against table and column names across
// the report's data sources.
func (s *ContextStore) ListEntities(ctx context.Context, reportID, query string) ([]contexthub.Entity, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	sources, err := s.ListDataSources(ctx, reportID, true)
	if err != nil {
		return nil, err
	}
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		tokens[strings.Trim(tok, ".,!?\"'")] = true
	}

	var out []contexthub.Entity
	seen := make(map[string]bool)
	for _, src := range sources {
		for _, table := range src.Tables {
			if tokens[strings.ToLower(table.Name)] && !seen[table.Name] {
				seen[table.Name] = true
				out = append(out, contexthub.Entity{
					Name:        table.Name,
					Kind:        "table",
					Description: fmt.Sprintf("table in %s", src.Name),
				})
			}
			for _, col := range table.Columns {
				key := table.Name + "." + col.Name
				if tokens[strings.ToLower(col.Name)] && !seen[key] {
					seen[key] = true
					out = append(out, contexthub.Entity{
						Name:        col.Name,
						Kind:        "column",
						Description: fmt.Sprintf("column of %s in %s", table.Name, src.Name),
					})
				}
			}
		}
	}
	return out, nil
}

func decodeTable(raw map[string]interface{}) (contexthub.TableRecord, error) {
	var table contexthub.TableRecord
	if err := remarshal(raw, &table); err != nil {
		return contexthub.TableRecord{}, err
	}
	return table, nil
}

func payloadContent(payload map[string]interface{}) string {
	if payload == nil {
		return ""
	}
	if content, ok := payload["content"].(string); ok {
		return content
	}
	return ""
}

func remarshal(in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
