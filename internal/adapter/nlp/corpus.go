package nlp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"newsmonitor/internal/domain"
)

// StopwordsFile is the corpus file holding one English stopword per line.
const StopwordsFile = "stopwords-en.txt"

// Corpus is the on-disk NLP reference data. It is configured at most once
// per process; later calls return the first outcome.
type Corpus struct {
	path      string
	once      sync.Once
	stopwords map[string]struct{}
	err       error
}

func NewCorpus(path string) *Corpus {
	return &Corpus{path: path}
}

// Configure locates the corpus and loads it. A missing directory or file
// yields domain.ErrCorpusUnavailable.
func (c *Corpus) Configure() error {
	c.once.Do(func() {
		c.stopwords, c.err = loadStopwords(c.path)
	})
	return c.err
}

// IsStopword reports whether w is a stopword. The corpus must be configured.
func (c *Corpus) IsStopword(w string) bool {
	_, ok := c.stopwords[w]
	return ok
}

func loadStopwords(dir string) (map[string]struct{}, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrCorpusUnavailable, dir)
	}

	f, err := os.Open(filepath.Join(dir, StopwordsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrCorpusUnavailable, StopwordsFile, err)
	}
	return words, nil
}
