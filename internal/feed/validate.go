package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

var (
	ErrRedirectLoop = errors.New("too many redirects")
	ErrNoFeed       = errors.New("no feed found")
)

// errNotFeed marks a candidate that answered with something other than
// a feed. It separates "checked and rejected" from transport failures.
var errNotFeed = errors.New("not a feed")

type validation struct {
	feedURL string
	typ     Type
}

// validate probes candidates in order and returns the first confirmed
// feed. On exhaustion it returns ErrNoFeed when at least one candidate
// answered, or the last transport error when none did.
func (f *Finder) validate(ctx context.Context, cands []Candidate) (*validation, error) {
	sawResponse := false
	var lastErr error

	for _, cand := range cands {
		v, err := f.probe(ctx, cand.URL)
		if err == nil {
			f.log.WithFields(logrus.Fields{
				"feed":   v.feedURL,
				"type":   v.typ,
				"source": cand.Source,
			}).Debug("candidate validated")
			return v, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		f.log.WithFields(logrus.Fields{
			"candidate": cand.URL,
			"source":    cand.Source,
		}).Debugf("rejected: %v", err)

		if errors.Is(err, errNotFeed) {
			sawResponse = true
		} else {
			lastErr = err
		}
	}

	if !sawResponse && lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoFeed
}

// probe fetches one candidate and classifies the final response.
func (f *Finder) probe(ctx context.Context, candURL string) (*validation, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", errNotFeed, resp.StatusCode)
	}

	head, err := io.ReadAll(io.LimitReader(resp.Body, sniffLimit))
	if err != nil {
		return nil, err
	}

	finalURL := candURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if typ, ok := sniffType(head); ok {
		return &validation{feedURL: finalURL, typ: typ}, nil
	}

	ct := resp.Header.Get("Content-Type")
	if typ, ok := typeFromContentType(ct); ok {
		return &validation{feedURL: finalURL, typ: typ}, nil
	}

	return nil, fmt.Errorf("%w: content-type %q", errNotFeed, ct)
}
