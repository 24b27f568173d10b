package source

import (
	"net"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	datePathRe = regexp.MustCompile(`/(19|20)\d{2}/(0?[1-9]|1[0-2])/|/(19|20)\d{2}-\d{2}-\d{2}|/(19|20)\d{2}(0[1-9]|1[0-2])\d{2}/`)
	numericID  = regexp.MustCompile(`\d{5,}`)

	articleExts = map[string]bool{"": true, ".html": true, ".htm": true, ".shtml": true, ".php": true, ".asp": true, ".aspx": true, ".cms": true}

	badSegments = map[string]bool{
		"about": true, "about-us": true, "account": true, "advertise": true, "advertising": true,
		"author": true, "authors": true, "careers": true, "category": true, "contact": true,
		"contact-us": true, "cookies": true, "faq": true, "feedback": true, "help": true,
		"jobs": true, "legal": true, "login": true, "logout": true, "newsletter": true,
		"newsletters": true, "privacy": true, "privacy-policy": true, "profile": true,
		"register": true, "rss": true, "feed": true, "feeds": true, "search": true,
		"signin": true, "signup": true, "sitemap": true, "subscribe": true, "subscription": true,
		"tag": true, "tags": true, "terms": true, "terms-of-service": true, "terms-of-use": true,
	}

	trackingParams = []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "fbclid", "gclid", "cmpid", "ref"}
)

// resolve turns href into an absolute http(s) URL relative to base, without
// fragment or tracking parameters.
func resolve(base *url.URL, href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return nil, false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	u := base.ResolveReference(ref)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	u.Fragment = ""
	u.RawFragment = ""
	if u.RawQuery != "" {
		q := u.Query()
		for _, p := range trackingParams {
			q.Del(p)
		}
		u.RawQuery = q.Encode()
	}
	return u, true
}

// registrable returns the registrable domain of host, e.g. cnn.com for
// edition.cnn.com. Hosts without a public suffix (IPs, localhost) are
// returned unchanged.
func registrable(host string) string {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if net.ParseIP(host) != nil {
		return host
	}
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

func sameSite(u, root *url.URL) bool {
	return registrable(u.Hostname()) == registrable(root.Hostname())
}

// brand derives the publisher name from the host: www.cnn.com -> cnn.
func brand(host string) string {
	host = strings.ToLower(host)
	d := registrable(host)
	if net.ParseIP(d) != nil {
		return d
	}
	suffix, _ := publicsuffix.PublicSuffix(d)
	if suffix != "" && suffix != d {
		return strings.TrimSuffix(d, "."+suffix)
	}
	return strings.TrimPrefix(host, "www.")
}

func segments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

func hasBadSegment(segs []string) bool {
	for _, s := range segs {
		if badSegments[s] {
			return true
		}
	}
	return false
}

// isArticleURL applies the usual news URL heuristics: a date in the path,
// a long slug, or a numeric id below a section.
func isArticleURL(u *url.URL) bool {
	if !articleExts[strings.ToLower(path.Ext(u.Path))] {
		return false
	}
	segs := segments(u.Path)
	if len(segs) == 0 || hasBadSegment(segs) {
		return false
	}
	if datePathRe.MatchString(u.Path) {
		return true
	}

	last := strings.TrimSuffix(segs[len(segs)-1], path.Ext(segs[len(segs)-1]))
	if len(strings.Split(last, "-")) >= 4 || len(strings.Split(last, "_")) >= 4 {
		return true
	}
	return len(segs) >= 2 && numericID.MatchString(last)
}

func isFeedURL(u *url.URL) bool {
	p := strings.ToLower(u.Path)
	switch path.Ext(p) {
	case ".rss", ".atom", ".xml":
		return !strings.Contains(p, "sitemap")
	}
	for _, s := range segments(p) {
		if s == "rss" || s == "feed" || s == "feeds" {
			return true
		}
	}
	return false
}

// isCategoryURL accepts section roots: one short path segment on the
// source host, or the root of a subdomain.
func isCategoryURL(u, root *url.URL) bool {
	if !sameSite(u, root) || u.RawQuery != "" {
		return false
	}
	segs := segments(u.Path)
	if len(segs) == 0 {
		return !strings.EqualFold(u.Hostname(), root.Hostname())
	}
	if len(segs) != 1 || !strings.EqualFold(u.Hostname(), root.Hostname()) {
		return false
	}
	s := segs[0]
	if badSegments[s] || path.Ext(s) != "" || len(s) > 30 || numericID.MatchString(s) {
		return false
	}
	return !isArticleURL(u)
}

// linkSet keeps unique links in discovery order.
type linkSet struct {
	seen map[string]bool
	list []string
}

func newLinkSet() *linkSet {
	return &linkSet{seen: make(map[string]bool)}
}

func (s *linkSet) add(u string) bool {
	key := strings.TrimSuffix(u, "/")
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.list = append(s.list, u)
	return true
}

func (s *linkSet) len() int { return len(s.list) }
