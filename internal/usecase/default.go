package usecase

import (
	"context"
	"fmt"

	"newsmonitor/internal/domain"
)

const DefaultDocsURL = "https://github.com/byrro/serverless-news-monitor/"

// DefaultHandler answers requests without a known action.
type DefaultHandler struct {
	env *Env
}

func (h *DefaultHandler) Run(ctx context.Context) domain.Result {
	docs := h.env.DocsURL
	if docs == "" {
		docs = DefaultDocsURL
	}

	p := domain.NewPayload(200)
	msg := fmt.Sprintf("Please provide a valid action. Check the documentation for usage: %s", docs)
	if err := AppendMessage(p, msg); err != nil {
		return domain.Fail(500, domain.FailureKind(err), GenericFailureMessage)
	}
	return domain.Success(p)
}
