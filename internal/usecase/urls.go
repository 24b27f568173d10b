package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"newsmonitor/internal/domain"
)

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// normalizeURL percent-decodes a route parameter and adds http:// when the
// value does not start with a scheme. Malformed escapes are kept as given.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	decoded = strings.TrimSpace(decoded)
	if decoded == "" {
		return "", fmt.Errorf("%w: empty url", domain.ErrInvalidURL)
	}
	if !schemePrefix.MatchString(decoded) {
		decoded = "http://" + strings.TrimLeft(decoded, "/")
	}
	return decoded, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
