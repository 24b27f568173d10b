package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"newsmonitor/internal/repository"
)

const (
	DefaultModel = "gpt-4o-mini"

	// maxInputChars bounds the article text sent in a single prompt.
	maxInputChars = 12000
)

var ErrEmptyAnswer = errors.New("llm: empty answer")

const prompt = `The json API endpoint returns a {summary, keywords, error} object, like {"summary": "The article is about xyz", "keywords": ["xyz"], "error": null}. The summary states the contents of the article in five sentences or less, one sentence per line, and never starts with "The article says" or similar introductions. keywords lists up to ten lower-case single words that best describe the article, most relevant first.

<TITLE>%s</TITLE>

<INPUT>%s</INPUT>

The output is as follows (as a reminder, the json API endpoint returns a {summary, keywords, error} object):`

type answer struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Error    *string  `json:"error"`
}

// Summarizer asks a chat completion model for the summary and keywords of
// an article. The NLP corpus is still required so both enrichers fail the
// same way when it is missing.
type Summarizer struct {
	client *openai.Client
	model  string
	corpus repository.Corpus
}

// NewSummarizer builds a client for token. baseURL overrides the OpenAI
// endpoint when non-empty.
func NewSummarizer(token, model, baseURL string, corpus repository.Corpus) *Summarizer {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		corpus: corpus,
	}
}

func (s *Summarizer) Enrich(ctx context.Context, title, text string) (string, []string, error) {
	if err := s.corpus.Configure(); err != nil {
		return "", nil, err
	}

	if r := []rune(text); len(r) > maxInputChars {
		text = string(r[:maxInputChars])
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(prompt, title, text),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return "", nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil, ErrEmptyAnswer
	}

	var a answer
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &a); err != nil {
		return "", nil, fmt.Errorf("decoding answer: %w", err)
	}
	if a.Error != nil && *a.Error != "" {
		return "", nil, fmt.Errorf("llm reported: %s", *a.Error)
	}

	keywords := []string{}
	for _, k := range a.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return strings.TrimSpace(a.Summary), keywords, nil
}
