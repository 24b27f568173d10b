package usecase

import (
	"fmt"

	"newsmonitor/internal/domain"
)

const (
	streamlineListLimit = 5
	streamlineTextLimit = 200
)

var bulkyFields = map[string]bool{"html": true, "text": true, "summary": true}

// Streamline returns a copy of p with long text fields and lists shortened
// for logging. p itself is not modified.
func Streamline(p *domain.Payload) *domain.Payload {
	if p == nil {
		return nil
	}
	out := p.Clone()
	streamline(out)
	return out
}

func streamline(p *domain.Payload) {
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		switch t := v.(type) {
		case *domain.Payload:
			if t != nil {
				streamline(t)
			}
		case string:
			if r := []rune(t); bulkyFields[key] && len(r) > streamlineTextLimit {
				p.Set(key, fmt.Sprintf("%s... (%d characters)", string(r[:streamlineTextLimit]), len(r)))
			}
		case []string:
			if key != "messages" && len(t) > streamlineListLimit {
				short := append([]string(nil), t[:streamlineListLimit]...)
				p.Set(key, append(short, fmt.Sprintf("... (%d more)", len(t)-streamlineListLimit)))
			}
		}
	}
}
