package feed

import (
	"bytes"
	"strings"

	"github.com/mmcdole/gofeed"
)

// sniffLimit bounds how much of a candidate body is read for
// classification.
const sniffLimit = 32 * 1024

// sniffType classifies a body by its root element. JSON feeds are
// accepted but not distinguished further.
func sniffType(body []byte) (Type, bool) {
	switch gofeed.DetectFeedType(bytes.NewReader(body)) {
	case gofeed.FeedTypeRSS:
		return TypeRSS, true
	case gofeed.FeedTypeAtom:
		return TypeAtom, true
	case gofeed.FeedTypeJSON:
		return TypeUnknown, true
	}
	return TypeUnknown, false
}

// typeFromContentType accepts only media types that explicitly declare
// a feed. Generic XML does not count; sitemaps are served as text/xml
// too.
func typeFromContentType(ct string) (Type, bool) {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch strings.ToLower(strings.TrimSpace(ct)) {
	case "application/rss+xml":
		return TypeRSS, true
	case "application/atom+xml":
		return TypeAtom, true
	case "application/feed+json":
		return TypeUnknown, true
	}
	return TypeUnknown, false
}
