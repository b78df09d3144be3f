package contexthub

import "context"

// The carrier builders are thin, pure producers over the store; the hub
// converts their errors into empty sections.

// ResourceBuilder materializes the resources section.
type ResourceBuilder struct {
	store      Store
	sampleK    int
	indexLimit int
}

// NewResourceBuilder creates a resource builder.
func NewResourceBuilder(store Store, sampleK, indexLimit int) *ResourceBuilder {
	return &ResourceBuilder{store: store, sampleK: sampleK, indexLimit: indexLimit}
}

// Build lists repository resources.
func (b *ResourceBuilder) Build(ctx context.Context, reportID string) (ResourcesSection, error) {
	items, err := b.store.ListResources(ctx, reportID)
	if err != nil {
		return ResourcesSection{}, err
	}
	return ResourcesSection{Items: items, SampleK: b.sampleK, IndexLimit: b.indexLimit}, nil
}

// FileBuilder materializes the files section.
type FileBuilder struct{ store Store }

// NewFileBuilder creates a file builder.
func NewFileBuilder(store Store) *FileBuilder { return &FileBuilder{store: store} }

// Build lists report files.
func (b *FileBuilder) Build(ctx context.Context, reportID string) (FilesSection, error) {
	items, err := b.store.ListFiles(ctx, reportID)
	if err != nil {
		return FilesSection{}, err
	}
	return FilesSection{Items: items}, nil
}

// WidgetBuilder materializes the widgets section.
type WidgetBuilder struct{ store Store }

// NewWidgetBuilder creates a widget builder.
func NewWidgetBuilder(store Store) *WidgetBuilder { return &WidgetBuilder{store: store} }

// Build lists existing widgets.
func (b *WidgetBuilder) Build(ctx context.Context, reportID string) (WidgetsSection, error) {
	items, err := b.store.ListWidgets(ctx, reportID)
	if err != nil {
		return WidgetsSection{}, err
	}
	return WidgetsSection{Items: items}, nil
}

// QueryBuilder materializes the queries section.
type QueryBuilder struct{ store Store }

// NewQueryBuilder creates a query builder.
func NewQueryBuilder(store Store) *QueryBuilder { return &QueryBuilder{store: store} }

// Build lists prior queries.
func (b *QueryBuilder) Build(ctx context.Context, reportID string) (QueriesSection, error) {
	items, err := b.store.ListQueries(ctx, reportID)
	if err != nil {
		return QueriesSection{}, err
	}
	return QueriesSection{Items: items}, nil
}

// CodeBuilder materializes the code section.
type CodeBuilder struct{ store Store }

// NewCodeBuilder creates a code builder.
func NewCodeBuilder(store Store) *CodeBuilder { return &CodeBuilder{store: store} }

// Build lists code snippets.
func (b *CodeBuilder) Build(ctx context.Context, reportID string) (CodeSection, error) {
	items, err := b.store.ListCode(ctx, reportID)
	if err != nil {
		return CodeSection{}, err
	}
	return CodeSection{Snippets: items}, nil
}

// EntityBuilder materializes the entities section.
type EntityBuilder struct{ store Store }

// NewEntityBuilder creates an entity builder.
func NewEntityBuilder(store Store) *EntityBuilder { return &EntityBuilder{store: store} }

// Build resolves entities mentioned by the query.
func (b *EntityBuilder) Build(ctx context.Context, reportID, query string) (EntitiesSection, error) {
	items, err := b.store.ListEntities(ctx, reportID, query)
	if err != nil {
		return EntitiesSection{}, err
	}
	return EntitiesSection{Items: items}, nil
}

// MentionBuilder materializes the mentions section from the prompt's parsed
// mention list. Pure — no storage access.
type MentionBuilder struct{}

// NewMentionBuilder creates a mention builder.
func NewMentionBuilder() *MentionBuilder { return &MentionBuilder{} }

// Build wraps the parsed mentions.
func (b *MentionBuilder) Build(_ context.Context, mentions []Mention) (MentionsSection, error) {
	return MentionsSection{Items: mentions}, nil
}
