package usecase

import (
	"context"

	"newsmonitor/internal/domain"
)

const (
	AttributionNotice = "Article data is extracted automatically from the publisher's public pages. Always credit the original source when using it."
	CopyrightNotice   = "Content remains the property of its publishers and may be protected by copyright. Review each publisher's terms of use before republishing."
)

// Handler is one typed operation selected by the router. Run is the only
// state transition; a handler instance is used for a single request.
type Handler interface {
	Run(ctx context.Context) domain.Result
}

// EnrichHook lets a handler add its own notices after the disclaimers.
type EnrichHook interface {
	EnrichPayload(p *domain.Payload) error
}

// AppendMessage adds text to the payload's messages list, creating the
// list on first use.
func AppendMessage(p *domain.Payload, text string) error {
	if p == nil {
		return ErrInvalidState
	}
	messages := append([]string(nil), p.Messages()...)
	p.Set("messages", append(messages, text))
	return nil
}

// Enrich appends the disclaimers to a successful payload and then runs the
// handler's hook, if it has one. A nil payload is left alone.
func Enrich(p *domain.Payload, h Handler) error {
	if p == nil {
		return nil
	}
	if err := AppendMessage(p, AttributionNotice); err != nil {
		return err
	}
	if err := AppendMessage(p, CopyrightNotice); err != nil {
		return err
	}
	if hook, ok := h.(EnrichHook); ok {
		return hook.EnrichPayload(p)
	}
	return nil
}
