// Package tokens provides model-aware token estimation for rendered context.
// Counts are estimates: non-OpenAI models are approximated with an OpenAI
// encoding, which is close enough for budget reporting.
package tokens

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the fallback when a model id is unknown.
const DefaultEncoding = "cl100k_base"

// encodingByModelPrefix maps model id prefixes to tiktoken encodings.
// Longest prefix wins.
var encodingByModelPrefix = map[string]string{
	"gpt-4o":        "o200k_base",
	"gpt-4o-mini":   "o200k_base",
	"o1":            "o200k_base",
	"gpt-4":         "cl100k_base",
	"gpt-3.5-turbo": "cl100k_base",
	"claude":        "cl100k_base",
	"gemini":        "cl100k_base",
}

// limitByModelPrefix maps model id prefixes to context window sizes.
var limitByModelPrefix = map[string]int{
	"gpt-4o":          128000,
	"gpt-4-turbo":     128000,
	"gpt-4":           8192,
	"gpt-3.5-turbo":   16385,
	"o1":              200000,
	"claude-3":        200000,
	"claude-sonnet-4": 200000,
	"gemini-1.5-pro":  1048576,
	"gemini-2.0":      1048576,
}

// Counter counts tokens for strings under a given model id. Safe for
// concurrent use; encodings are cached per encoding name.
type Counter struct {
	mu    sync.RWMutex
	cache map[string]*tiktoken.Tiktoken
}

// NewCounter creates a token counter.
func NewCounter() *Counter {
	return &Counter{cache: make(map[string]*tiktoken.Tiktoken)}
}

// Count returns the estimated token count of text under modelID. An unknown
// or empty modelID falls back to the default encoding; if the tokenizer data
// cannot be loaded at all, a chars/4 heuristic keeps the API error-free.
func (c *Counter) Count(text, modelID string) int {
	if text == "" {
		return 0
	}
	enc := c.encodingFor(modelID)
	if enc == nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// ModelLimit returns the context window for modelID, or 0 if unknown.
func (c *Counter) ModelLimit(modelID string) int {
	limit, _ := longestPrefixMatch(limitByModelPrefix, modelID)
	return limit
}

// Remaining returns max(0, model_limit − prompt_tokens) and whether the
// model limit is known.
func (c *Counter) Remaining(promptTokens int, modelID string) (int, bool) {
	limit := c.ModelLimit(modelID)
	if limit == 0 {
		return 0, false
	}
	remaining := limit - promptTokens
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

func (c *Counter) encodingFor(modelID string) *tiktoken.Tiktoken {
	name := DefaultEncoding
	if enc, ok := longestPrefixMatchString(encodingByModelPrefix, modelID); ok {
		name = enc
	}

	c.mu.RLock()
	cached := c.cache[name]
	c.mu.RUnlock()
	if cached != nil {
		return cached
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil
	}

	c.mu.Lock()
	c.cache[name] = enc
	c.mu.Unlock()
	return enc
}

func longestPrefixMatch(m map[string]int, modelID string) (int, bool) {
	best, found := 0, false
	bestLen := -1
	for prefix, v := range m {
		if strings.HasPrefix(modelID, prefix) && len(prefix) > bestLen {
			best, found, bestLen = v, true, len(prefix)
		}
	}
	return best, found
}

func longestPrefixMatchString(m map[string]string, modelID string) (string, bool) {
	best, found := "", false
	bestLen := -1
	for prefix, v := range m {
		if strings.HasPrefix(modelID, prefix) && len(prefix) > bestLen {
			best, found, bestLen = v, true, len(prefix)
		}
	}
	return best, found
}
