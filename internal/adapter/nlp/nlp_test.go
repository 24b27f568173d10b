package nlp

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmonitor/internal/domain"
)

func writeCorpus(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	content := "# test stopwords\n" + strings.Join(words, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, StopwordsFile), []byte(content), 0o644))
	return dir
}

func newCorpus(t *testing.T, words ...string) *Corpus {
	t.Helper()
	return NewCorpus(writeCorpus(t, words...))
}

func TestCorpus_MissingDirectory(t *testing.T) {
	err := NewCorpus(filepath.Join(t.TempDir(), "nope")).Configure()

	require.ErrorIs(t, err, domain.ErrCorpusUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCorpus_MissingStopwordsFile(t *testing.T) {
	err := NewCorpus(t.TempDir()).Configure()

	require.ErrorIs(t, err, domain.ErrCorpusUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCorpus_PathIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "corpus")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.ErrorIs(t, NewCorpus(file).Configure(), domain.ErrCorpusUnavailable)
}

func TestCorpus_LoadsStopwords(t *testing.T) {
	c := newCorpus(t, "the", "And", "  of  ")
	require.NoError(t, c.Configure())

	for _, w := range []string{"the", "and", "of"} {
		assert.True(t, c.IsStopword(w), "expected %q to be a stopword", w)
	}
	assert.False(t, c.IsStopword("# test stopwords"))
	assert.False(t, c.IsStopword("senate"))
}

func TestCorpus_ConfigureIsIdempotent(t *testing.T) {
	dir := writeCorpus(t, "the")
	c := NewCorpus(dir)
	require.NoError(t, c.Configure())

	require.NoError(t, os.RemoveAll(dir))

	require.NoError(t, c.Configure(), "expected cached outcome")
	assert.True(t, c.IsStopword("the"))
}

func TestSummarizer_Keywords(t *testing.T) {
	s := NewSummarizer(newCorpus(t, "is", "too"))
	require.NoError(t, s.corpus.Configure())

	got := s.Keywords("Comparing languages", "Go is fast. Go is simple. Rust is fast too.")
	assert.Equal(t, []string{"go", "fast", "simple", "rust", "comparing", "languages"}, got)
}

func TestSummarizer_KeywordsCapped(t *testing.T) {
	s := NewSummarizer(newCorpus(t))
	require.NoError(t, s.corpus.Configure())

	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike"
	assert.Len(t, s.Keywords("", text), maxKeywords)
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First sentence. Second one! Third? fourth stays.\nNew paragraph")
	assert.Equal(t, []string{"First sentence.", "Second one!", "Third? fourth stays.", "New paragraph"}, got)
}

func TestSummarize_ShortTextKeepsAllSentences(t *testing.T) {
	s := NewSummarizer(newCorpus(t, "the"))
	require.NoError(t, s.corpus.Configure())

	assert.Equal(t, "The budget passed.\nThe vote was close.", s.Summarize("Budget", "The budget passed. The vote was close."))
}

func TestSummarize_PicksTopSentencesInOrder(t *testing.T) {
	s := NewSummarizer(newCorpus(t, "the", "a", "of", "on", "was", "in", "and", "to", "for"))
	require.NoError(t, s.corpus.Configure())

	text := strings.Join([]string{
		"The senate approved the budget bill on Tuesday after weeks of debate in the chamber.",
		"Weather was mild.",
		"Lunch was served.",
		"The budget bill funds schools, roads and hospitals for the next fiscal year.",
		"Nobody noticed.",
		"Senators said the budget bill was a compromise between both parties in the senate.",
		"Cats slept.",
		"The house will vote on the senate budget bill next week.",
	}, " ")

	got := strings.Split(s.Summarize("Senate approves budget bill", text), "\n")
	require.Len(t, got, summarySentences)
	assert.True(t, strings.HasPrefix(got[0], "The senate approved"), "expected lead sentence first, got %q", got[0])
	assert.NotContains(t, got, "Lunch was served.")
	assert.NotContains(t, got, "Nobody noticed.")

	last := -1
	for _, line := range got {
		idx := strings.Index(text, line)
		assert.Greater(t, idx, last, "summary sentences out of order: %q", got)
		last = idx
	}
}

func TestSummarize_EmptyText(t *testing.T) {
	s := NewSummarizer(newCorpus(t))
	require.NoError(t, s.corpus.Configure())

	assert.Empty(t, s.Summarize("Title", "   "))
}

func TestEnrich_CorpusUnavailable(t *testing.T) {
	s := NewSummarizer(NewCorpus(filepath.Join(t.TempDir(), "missing")))

	_, _, err := s.Enrich(context.Background(), "t", "text")
	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
}

func TestEnrich_ReturnsSummaryAndKeywords(t *testing.T) {
	s := NewSummarizer(newCorpus(t, "the", "is"))

	summary, keywords, err := s.Enrich(context.Background(), "Go release", "The Go release is out. The release is fast.")
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	require.NotEmpty(t, keywords)
	assert.Equal(t, "release", keywords[0])
}
