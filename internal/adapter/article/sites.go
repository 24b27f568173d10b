package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

// siteProfile holds publisher-specific selectors for sites whose article
// body the generic extraction does not isolate well.
type siteProfile struct {
	body []string
	// nonText lists hosts of the publisher that only serve video or photo pages.
	nonText []string
}

var siteProfiles = map[string]siteProfile{
	"detik.com": {
		body: []string{"div.detail__body-text", "div.detail__body"},
	},
	"kompas.com": {
		body:    []string{"div.read__content"},
		nonText: []string{"video.kompas.com", "foto.kompas.com"},
	},
	"liputan6.com": {
		body: []string{"div.article-content-body__item-content"},
	},
}

func profileFor(host string) (siteProfile, bool) {
	host = strings.ToLower(host)
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return siteProfile{}, false
	}
	p, ok := siteProfiles[domain]
	return p, ok
}

func (p siteProfile) isNonText(host string) bool {
	host = strings.ToLower(host)
	for _, h := range p.nonText {
		if host == h {
			return true
		}
	}
	return false
}

// text returns the body found by the first matching selector, one
// paragraph per block.
func (p siteProfile) text(doc *goquery.Document) string {
	for _, sel := range p.body {
		body := doc.Find(sel).First().Clone()
		if body.Length() == 0 {
			continue
		}
		body.Find("script, style, .parallaxindetail, .staticdetail_container, table.linksisip").Remove()

		var b strings.Builder
		body.Find("p").Each(func(i int, s *goquery.Selection) {
			if t := collapseSpaces(s.Text()); t != "" {
				b.WriteString(t + "\n\n")
			}
		})
		if text := strings.TrimSpace(b.String()); text != "" {
			return text
		}
		if text := normalizeText(body.Text()); text != "" {
			return text
		}
	}
	return ""
}
