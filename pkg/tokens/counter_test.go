package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Count(t *testing.T) {
	counter := NewCounter()

	t.Run("empty text is zero", func(t *testing.T) {
		assert.Equal(t, 0, counter.Count("", "gpt-4o"))
	})

	t.Run("counts are positive and scale with length", func(t *testing.T) {
		short := counter.Count("hello world", "gpt-4o")
		long := counter.Count(strings.Repeat("hello world ", 50), "gpt-4o")
		assert.Greater(t, short, 0)
		assert.Greater(t, long, short)
	})

	t.Run("unknown model falls back to default encoding", func(t *testing.T) {
		n := counter.Count("some prompt text to estimate", "totally-unknown-model")
		assert.Greater(t, n, 0)
	})

	t.Run("empty model id works", func(t *testing.T) {
		n := counter.Count("some prompt text", "")
		assert.Greater(t, n, 0)
	})
}

func TestCounter_ModelLimit(t *testing.T) {
	counter := NewCounter()

	t.Run("known model", func(t *testing.T) {
		assert.Equal(t, 128000, counter.ModelLimit("gpt-4o"))
	})

	t.Run("longest prefix wins", func(t *testing.T) {
		// gpt-4-turbo-2024 should match gpt-4-turbo, not gpt-4.
		assert.Equal(t, 128000, counter.ModelLimit("gpt-4-turbo-2024-04-09"))
		assert.Equal(t, 8192, counter.ModelLimit("gpt-4-0613"))
	})

	t.Run("unknown model is zero", func(t *testing.T) {
		assert.Equal(t, 0, counter.ModelLimit("no-such-model"))
	})
}

func TestCounter_Remaining(t *testing.T) {
	counter := NewCounter()

	t.Run("known model subtracts prompt tokens", func(t *testing.T) {
		remaining, known := counter.Remaining(1000, "gpt-4o")
		assert.True(t, known)
		assert.Equal(t, 127000, remaining)
	})

	t.Run("clamps at zero when prompt exceeds the window", func(t *testing.T) {
		remaining, known := counter.Remaining(10000, "gpt-4-0613")
		assert.True(t, known)
		assert.Equal(t, 0, remaining)
	})

	t.Run("unknown model reports unknown", func(t *testing.T) {
		remaining, known := counter.Remaining(100, "mystery-model")
		assert.False(t, known)
		assert.Equal(t, 0, remaining)
	})
}
