package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRedirects = 5
	DefaultUserAgent    = "feedscout/0.1"

	maxPageBytes = 1 << 20
)

type Options struct {
	Timeout           time.Duration
	MaxRedirects      int
	RequestsPerSecond float64
	UserAgent         string
	Patterns          []string
	Signatures        []CMSSignature
	Logger            *logrus.Logger
}

// Finder locates the feed behind a blog URL. It is safe for concurrent
// use and holds no state between lookups.
type Finder struct {
	client  *http.Client
	limiter *rate.Limiter
	log     *logrus.Logger
	opts    Options
}

func NewFinder(opts Options) *Finder {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = DefaultMaxRedirects
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	f := &Finder{
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= opts.MaxRedirects {
					return ErrRedirectLoop
				}
				return nil
			},
		},
		log:  opts.Logger,
		opts: opts,
	}
	if opts.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return f
}

// Lookup normalizes rawURL, generates candidate feed URLs, and probes
// them in order. A failing homepage fetch degrades to URL-derived
// candidates only; it never fails the lookup by itself.
func (f *Finder) Lookup(ctx context.Context, rawURL string) Result {
	base, err := Normalize(rawURL)
	if err != nil {
		return Result{BlogURL: rawURL, FeedType: TypeUnknown, Status: StatusError, ErrorMessage: err.Error()}
	}
	blogURL := base.String()

	doc, err := f.fetchPage(ctx, blogURL)
	if err != nil {
		f.log.WithField("url", blogURL).Debugf("homepage fetch failed: %v", err)
	}

	cands := Candidates(base, doc, f.opts.Patterns, f.opts.Signatures)
	f.log.WithFields(logrus.Fields{"url": blogURL, "candidates": len(cands)}).Debug("probing")

	if len(cands) == 0 {
		return Result{BlogURL: blogURL, FeedType: TypeUnknown, Status: StatusError, ErrorMessage: "no candidates to probe"}
	}

	v, err := f.validate(ctx, cands)
	if err != nil {
		if errors.Is(err, ErrNoFeed) {
			return Result{BlogURL: blogURL, FeedType: TypeUnknown, Status: StatusNotFound}
		}
		return Result{BlogURL: blogURL, FeedType: TypeUnknown, Status: StatusError, ErrorMessage: err.Error()}
	}

	return Result{BlogURL: blogURL, FeedURL: v.feedURL, FeedType: v.typ, Status: StatusFound}
}

func (f *Finder) fetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
}

func (f *Finder) wait(ctx context.Context) error {
	if f.limiter == nil {
		return nil
	}
	return f.limiter.Wait(ctx)
}
