package quotes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, raw []string) *Service {
	t.Helper()
	historyFile := filepath.Join(t.TempDir(), "quotes_history.json")
	return NewService(raw, nil, historyFile)
}

func TestExtend_Empty(t *testing.T) {
	assert.Empty(t, Extend(nil))
	assert.Empty(t, Extend([]string{}))
}

func TestExtend_CyclicPadding(t *testing.T) {
	extended := Extend([]string{"a", "b", "c"})

	require.Len(t, extended, MinCoverage)
	// Циклическое повторение: a, b, c, a, b, c, ...
	for i, q := range extended {
		assert.Equal(t, []string{"a", "b", "c"}[i%3], q, "i=%d", i)
	}
}

func TestExtend_LongListAsIs(t *testing.T) {
	raw := make([]string, MinCoverage+10)
	for i := range raw {
		raw[i] = "q"
	}

	extended := Extend(raw)
	assert.Len(t, extended, MinCoverage+10)
}

func TestGetRandomQuote_EmptySetFallback(t *testing.T) {
	s := newTestService(t, nil)

	// Пустое хранилище: всегда запасная цитата.
	for i := 0; i < 10; i++ {
		assert.Equal(t, FallbackQuote, s.GetRandomQuote("status"))
	}
}

func TestGetRandomQuote_MemberOfSet(t *testing.T) {
	s := newTestService(t, []string{"a", "b", "c"})

	for i := 0; i < 50; i++ {
		q := s.GetRandomQuote("status")
		assert.Contains(t, []string{"a", "b", "c"}, q)
	}
}

func TestGetRandomQuote_NoImmediateRepeat(t *testing.T) {
	s := newTestService(t, []string{"a", "b"})

	prev := s.GetRandomQuote("status")
	for i := 0; i < 30; i++ {
		q := s.GetRandomQuote("status")
		assert.NotEqual(t, prev, q, "подряд выдана одна и та же цитата")
		prev = q
	}
}

func TestGetRandomQuote_PerRequesterHistory(t *testing.T) {
	s := newTestService(t, []string{"a", "b"})

	// История ведётся отдельно для каждого ключа: выдача для одного
	// запрашивающего не влияет на другого.
	q1 := s.GetRandomQuote("status")
	q2 := s.GetRandomQuote("monthly_notification")
	assert.Contains(t, []string{"a", "b"}, q1)
	assert.Contains(t, []string{"a", "b"}, q2)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, q1, s.lastUsed["status"])
	assert.Equal(t, q2, s.lastUsed["monthly_notification"])
}

func TestGetRandomQuote_HistoryPersisted(t *testing.T) {
	historyFile := filepath.Join(t.TempDir(), "quotes_history.json")
	s := NewService([]string{"a", "b"}, nil, historyFile)

	s.GetRandomQuote("status")

	data, err := os.ReadFile(historyFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status")
}
