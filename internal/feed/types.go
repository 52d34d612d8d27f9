package feed

// Source identifies the strategy that produced a candidate.
type Source int

const (
	SourceHTMLLink Source = iota
	SourcePattern
	SourceCMS
	SourceAnchor
)

func (s Source) String() string {
	switch s {
	case SourceHTMLLink:
		return "html-link"
	case SourcePattern:
		return "pattern"
	case SourceCMS:
		return "cms"
	case SourceAnchor:
		return "anchor"
	}
	return "unknown"
}

// Candidate is a feed URL guess awaiting validation. Lower priority
// probes first.
type Candidate struct {
	URL      string
	Source   Source
	Priority int
}

type Type string

const (
	TypeRSS     Type = "RSS"
	TypeAtom    Type = "Atom"
	TypeUnknown Type = "Unknown"
)

type Status string

const (
	StatusFound    Status = "Found"
	StatusNotFound Status = "NotFound"
	StatusError    Status = "Error"
)

// Result is the outcome of looking up the feed for one blog URL.
type Result struct {
	BlogURL      string
	FeedURL      string
	FeedType     Type
	Status       Status
	ErrorMessage string
}
