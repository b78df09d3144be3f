package contexthub

import (
	"context"
	"errors"
)

// fakeStore is an in-memory Store for builder and hub tests. Setting fail
// makes every list call error.
type fakeStore struct {
	dataSources  []DataSourceRecord
	instructions []InstructionRecord
	messages     []MessageRecord
	resources    []Resource
	files        []FileRef
	widgets      []WidgetRef
	queries      []QueryRef
	code         []CodeSnippet
	entities     []Entity

	fail bool
}

var errFakeStore = errors.New("store unavailable")

func (f *fakeStore) ListDataSources(ctx context.Context, reportID string, activeOnly bool) ([]DataSourceRecord, error) {
	if f.fail {
		return nil, errFakeStore
	}
	if !activeOnly {
		return f.dataSources, nil
	}
	var out []DataSourceRecord
	for _, ds := range f.dataSources {
		if ds.Active {
			out = append(out, ds)
		}
	}
	return out, nil
}

func (f *fakeStore) ListInstructions(ctx context.Context, reportID string) ([]InstructionRecord, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.instructions, nil
}

func (f *fakeStore) ListMessages(ctx context.Context, reportID, excludeCompletionID string) ([]MessageRecord, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.messages, nil
}

func (f *fakeStore) ListResources(ctx context.Context, reportID string) ([]Resource, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.resources, nil
}

func (f *fakeStore) ListFiles(ctx context.Context, reportID string) ([]FileRef, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.files, nil
}

func (f *fakeStore) ListWidgets(ctx context.Context, reportID string) ([]WidgetRef, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.widgets, nil
}

func (f *fakeStore) ListQueries(ctx context.Context, reportID string) ([]QueryRef, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.queries, nil
}

func (f *fakeStore) ListCode(ctx context.Context, reportID string) ([]CodeSnippet, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.code, nil
}

func (f *fakeStore) ListEntities(ctx context.Context, reportID, query string) ([]Entity, error) {
	if f.fail {
		return nil, errFakeStore
	}
	return f.entities, nil
}
