package contexthub

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// MainBuildID is the conventional id of the published instruction build.
// When no explicit build is requested, instructions from the main build win
// over loose rows.
const MainBuildID = "main"

// substringWeight is the secondary score for query tokens that appear as
// substrings (rather than whole-token matches) in an instruction.
const substringWeight = 0.8

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "how": true,
	"in": true, "is": true, "it": true, "of": true, "on": true, "or": true,
	"show": true, "that": true, "the": true, "this": true, "to": true,
	"what": true, "where": true, "which": true, "with": true,
}

// InstructionParams controls instruction loading.
type InstructionParams struct {
	// BuildID pins loading to a specific versioned build. Empty selects the
	// main build when one exists, else loose rows.
	BuildID string
	// Query is the user prompt used for intelligent keyword matching.
	Query string
	// MaxInContext caps the total items loaded (default 50).
	MaxInContext int
}

// InstructionBuilder materializes the instructions section.
type InstructionBuilder struct {
	store Store
}

// NewInstructionBuilder creates an instruction builder.
func NewInstructionBuilder(store Store) *InstructionBuilder {
	return &InstructionBuilder{store: store}
}

// Build loads instructions partitioned by load mode: all `always` first,
// then `intelligent` scored against the query and truncated to fit the cap.
// With no query, remaining slots are filled with unscored intelligent items
// (load_reason "fill"); with a query that matches nothing, none are added.
func (b *InstructionBuilder) Build(ctx context.Context, reportID string, p InstructionParams) (InstructionsSection, error) {
	records, err := b.store.ListInstructions(ctx, reportID)
	if err != nil {
		return InstructionsSection{}, fmt.Errorf("list instructions: %w", err)
	}
	records = selectBuild(records, p.BuildID)

	maxInContext := p.MaxInContext
	if maxInContext <= 0 {
		maxInContext = 50
	}

	var always, intelligent []InstructionRecord
	for _, r := range records {
		switch r.LoadMode {
		case LoadModeAlways:
			always = append(always, r)
		case LoadModeIntelligent:
			intelligent = append(intelligent, r)
		}
		// disabled rows are excluded entirely
	}
	sort.SliceStable(always, func(i, j int) bool { return always[i].Position < always[j].Position })
	sort.SliceStable(intelligent, func(i, j int) bool { return intelligent[i].Position < intelligent[j].Position })

	section := InstructionsSection{}
	for _, r := range always {
		if len(section.Items) >= maxInContext {
			break
		}
		section.Items = append(section.Items, item(r, LoadReasonAlways))
	}

	remaining := maxInContext - len(section.Items)
	if remaining <= 0 {
		return section, nil
	}

	query := strings.TrimSpace(p.Query)
	if query == "" {
		for _, r := range intelligent {
			if remaining == 0 {
				break
			}
			section.Items = append(section.Items, item(r, LoadReasonFill))
			remaining--
		}
		return section, nil
	}

	queryTokens := tokenize(query)
	type scored struct {
		rec   InstructionRecord
		score float64
	}
	var matches []scored
	for _, r := range intelligent {
		s := keywordScore(queryTokens, r.Text)
		if s > 0 {
			matches = append(matches, scored{rec: r, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	for _, m := range matches {
		if remaining == 0 {
			break
		}
		section.Items = append(section.Items, item(m.rec, fmt.Sprintf("search_match:%.2f", m.score)))
		remaining--
	}
	return section, nil
}

func item(r InstructionRecord, reason string) InstructionItem {
	return InstructionItem{
		ID:         r.ID,
		Text:       r.Text,
		Category:   r.Category,
		LoadMode:   r.LoadMode,
		LoadReason: reason,
		UsageCount: r.UsageCount,
	}
}

// selectBuild picks the instruction rows for the requested build: an
// explicit build id wins, else the main build when present, else loose rows.
func selectBuild(records []InstructionRecord, buildID string) []InstructionRecord {
	target := buildID
	if target == "" {
		for _, r := range records {
			if r.BuildID == MainBuildID {
				target = MainBuildID
				break
			}
		}
	}
	var out []InstructionRecord
	for _, r := range records {
		if target == "" {
			if r.BuildID == "" {
				out = append(out, r)
			}
		} else if r.BuildID == target {
			out = append(out, r)
		}
	}
	return out
}

// keywordScore combines Jaccard similarity over non-stopword tokens with a
// substring score of weight 0.8.
func keywordScore(queryTokens []string, text string) float64 {
	textTokens := tokenize(text)
	jaccard := jaccardScore(queryTokens, textTokens)

	lower := strings.ToLower(text)
	substrHits := 0
	for _, qt := range queryTokens {
		if strings.Contains(lower, qt) {
			substrHits++
		}
	}
	substr := 0.0
	if len(queryTokens) > 0 {
		substr = float64(substrHits) / float64(len(queryTokens))
	}
	return jaccard + substringWeight*substr
}

func jaccardScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)
	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// tokenize lowercases, splits on non-alphanumerics, and drops stopwords.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 && !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}
