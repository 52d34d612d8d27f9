// internal/feed/candidate.go
package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultPatterns is the ordered list of path suffixes probed when a
// page does not advertise its feed.
var DefaultPatterns = []string{
	"/feed",
	"/feed/",
	"/rss",
	"/rss.xml",
	"/feed.xml",
	"/atom.xml",
	"/index.xml",
	"/feed/atom",
	"/feed/rss",
	"/rss/atom",
	"/blog/feed",
	"/blog.atom",
	"/blog/index.rss",
	"/syndication.axd",
}

var feedLinkTypes = map[string]bool{
	"application/rss+xml":  true,
	"application/atom+xml": true,
}

var anchorKeywords = []string{"rss", "feed", "atom", "subscribe"}

// Pages can carry dozens of anchors mentioning "feed"; cap the tier.
const maxAnchorCandidates = 10

// Candidates builds the ordered probe list for base: link tags first
// (document order), then pattern suffixes, CMS-specific paths, root
// level suffixes when base lives under a path, and finally anchors
// whose text mentions a feed. doc may be nil when the homepage
// could not be fetched; only the URL-derived tiers apply then. The
// result is deduplicated, keeping the earliest occurrence, and its
// order depends only on the inputs.
func Candidates(base *url.URL, doc *goquery.Document, patterns []string, sigs []CMSSignature) []Candidate {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	if sigs == nil {
		sigs = DefaultCMSSignatures
	}

	var out []Candidate
	seen := make(map[string]bool)

	add := func(rawURL string, src Source) {
		if rawURL == "" || seen[rawURL] {
			return
		}
		seen[rawURL] = true
		out = append(out, Candidate{URL: rawURL, Source: src, Priority: len(out)})
	}

	if doc != nil {
		doc.Find("link").Each(func(_ int, s *goquery.Selection) {
			rel, _ := s.Attr("rel")
			if !relContainsAlternate(rel) {
				return
			}
			typ, _ := s.Attr("type")
			if !feedLinkTypes[strings.ToLower(strings.TrimSpace(typ))] {
				return
			}
			href, ok := s.Attr("href")
			if !ok {
				return
			}
			add(resolveRef(base, href), SourceHTMLLink)
		})
	}

	baseStr := base.Scheme + "://" + base.Host + strings.TrimSuffix(base.Path, "/")
	for _, p := range patterns {
		add(baseStr+p, SourcePattern)
	}

	if doc != nil {
		for _, sig := range matchCMS(doc, sigs) {
			for _, p := range sig.FeedPaths {
				add(baseStr+p, SourceCMS)
			}
		}
	}

	// A blog living under a path also gets the suffixes probed at the
	// site root.
	if base.Path != "" && base.Path != "/" {
		origin := base.Scheme + "://" + base.Host
		for _, p := range patterns {
			add(origin+p, SourcePattern)
		}
	}

	if doc != nil {
		added := 0
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			if added >= maxAnchorCandidates {
				return
			}
			href, _ := s.Attr("href")
			href = strings.TrimSpace(href)
			if href == "" || strings.HasPrefix(href, "#") {
				return
			}
			if !anchorMentionsFeed(strings.ToLower(s.Text())) {
				return
			}
			if abs := resolveRef(base, href); abs != "" && !seen[abs] {
				add(abs, SourceAnchor)
				added++
			}
		})
	}

	return out
}

// rel holds a whitespace-separated token list with case-insensitive
// tokens, so "alternate nofollow" and "Alternate" both count.
func relContainsAlternate(rel string) bool {
	for _, tok := range strings.Fields(rel) {
		if strings.EqualFold(tok, "alternate") {
			return true
		}
	}
	return false
}

func anchorMentionsFeed(text string) bool {
	for _, kw := range anchorKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// resolveRef makes href absolute against base and drops non-http
// results (mailto:, javascript:, ...).
func resolveRef(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	abs.Fragment = ""
	return abs.String()
}
