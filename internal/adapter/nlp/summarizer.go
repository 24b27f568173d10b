package nlp

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

const (
	maxKeywords      = 10
	summarySentences = 5
	idealSentenceLen = 20.0
)

// Summarizer produces extractive summaries and frequency keywords from
// the stopword corpus.
type Summarizer struct {
	corpus *Corpus
}

func NewSummarizer(corpus *Corpus) *Summarizer {
	return &Summarizer{corpus: corpus}
}

func (s *Summarizer) Enrich(ctx context.Context, title, text string) (string, []string, error) {
	if err := s.corpus.Configure(); err != nil {
		return "", nil, err
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	keywords := s.Keywords(title, text)
	return s.Summarize(title, text), keywords, nil
}

// tokens lowercases text and keeps word-like runs of letters and digits.
func tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func (s *Summarizer) contentWords(text string) []string {
	var out []string
	for _, t := range tokens(text) {
		t = strings.Trim(t, "'")
		if len([]rune(t)) < 2 || s.corpus.IsStopword(t) || isNumber(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type scored struct {
	word  string
	count int
	first int
}

// frequencies ranks content words by count, ties broken by first occurrence.
func (s *Summarizer) frequencies(text string) []scored {
	index := make(map[string]int)
	var ranked []scored
	for i, w := range s.contentWords(text) {
		if j, ok := index[w]; ok {
			ranked[j].count++
			continue
		}
		index[w] = len(ranked)
		ranked = append(ranked, scored{word: w, count: 1, first: i})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})
	return ranked
}

// Keywords returns the top body keywords followed by title words not
// already listed.
func (s *Summarizer) Keywords(title, text string) []string {
	keywords := []string{}
	seen := make(map[string]bool)
	for i, sc := range s.frequencies(text) {
		if i >= maxKeywords {
			break
		}
		seen[sc.word] = true
		keywords = append(keywords, sc.word)
	}
	for _, w := range s.contentWords(title) {
		if !seen[w] {
			seen[w] = true
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// Summarize picks the highest scoring sentences and returns them in
// their original order, one per line.
func (s *Summarizer) Summarize(title, text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	freq := s.frequencies(text)
	weight := make(map[string]float64)
	if len(freq) > 0 {
		top := float64(freq[0].count)
		for i, sc := range freq {
			if i >= maxKeywords {
				break
			}
			weight[sc.word] = float64(sc.count) / top
		}
	}

	titleWords := make(map[string]bool)
	for _, w := range s.contentWords(title) {
		titleWords[w] = true
	}

	type ranked struct {
		index int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sentence := range sentences {
		words := s.contentWords(sentence)
		scores[i] = ranked{index: i, score: s.score(words, len(tokens(sentence)), i, len(sentences), titleWords, weight)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	n := summarySentences
	if len(scores) < n {
		n = len(scores)
	}
	picked := make([]int, 0, n)
	for _, r := range scores[:n] {
		picked = append(picked, r.index)
	}
	sort.Ints(picked)

	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = sentences[idx]
	}
	return strings.Join(out, "\n")
}

func (s *Summarizer) score(words []string, length, index, total int, titleWords map[string]bool, weight map[string]float64) float64 {
	var titleHits, keywordScore float64
	for _, w := range words {
		if titleWords[w] {
			titleHits++
		}
		keywordScore += weight[w]
	}

	titleScore := 0.0
	if len(titleWords) > 0 {
		titleScore = titleHits / float64(len(titleWords))
	}
	if len(words) > 0 {
		keywordScore /= float64(len(words))
	}

	lengthScore := 1 - abs(idealSentenceLen-float64(length))/idealSentenceLen
	if lengthScore < 0 {
		lengthScore = 0
	}

	return (titleScore*1.5 + keywordScore*2.0 + lengthScore*0.5 + positionScore(index, total)*1.0) / 4.0
}

// positionScore favours leading sentences and, to a lesser degree, the
// closing one.
func positionScore(index, total int) float64 {
	normalized := float64(index+1) / float64(total)
	switch {
	case normalized <= 0.1:
		return 0.17
	case normalized <= 0.2:
		return 0.23
	case normalized <= 0.3:
		return 0.14
	case normalized <= 0.4:
		return 0.08
	case normalized <= 0.5:
		return 0.05
	case normalized <= 0.6:
		return 0.04
	case normalized <= 0.7:
		return 0.06
	case normalized <= 0.8:
		return 0.04
	case normalized <= 0.9:
		return 0.04
	default:
		return 0.15
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// splitSentences breaks text on paragraph boundaries and on terminal
// punctuation followed by whitespace and an upper-case letter or digit.
func splitSentences(text string) []string {
	var sentences []string
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimSpace(para))
		start := 0
		for i := 0; i < len(runes); i++ {
			if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
				continue
			}
			j := i + 1
			for j < len(runes) && (runes[j] == '"' || runes[j] == '\'' || runes[j] == ')' || runes[j] == '”') {
				j++
			}
			if j >= len(runes) || !unicode.IsSpace(runes[j]) {
				continue
			}
			k := j
			for k < len(runes) && unicode.IsSpace(runes[k]) {
				k++
			}
			if k < len(runes) && (unicode.IsUpper(runes[k]) || unicode.IsDigit(runes[k]) || runes[k] == '"' || runes[k] == '“') {
				if s := strings.TrimSpace(string(runes[start:j])); s != "" {
					sentences = append(sentences, s)
				}
				start = k
				i = k - 1
			}
		}
		if start < len(runes) {
			if s := strings.TrimSpace(string(runes[start:])); s != "" {
				sentences = append(sentences, s)
			}
		}
	}
	return sentences
}
