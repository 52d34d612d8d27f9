package batch

import (
	"context"
	"sync"
	"time"

	"github.com/mreyes87/feedscout/internal/feed"
)

// Entry is one input row: a blog to find the feed for.
type Entry struct {
	Title string
	URL   string
}

// Lookuper runs a single feed lookup. *feed.Finder implements it.
type Lookuper interface {
	Lookup(ctx context.Context, rawURL string) feed.Result
}

// Summary counts the outcomes of one batch.
type Summary struct {
	Total       int
	Found       int
	NotFound    int
	Errors      int
	SkippedRows int
}

// Runner drives concurrent lookups over a list of entries.
type Runner struct {
	finder  Lookuper
	workers int
	timeout time.Duration

	// OnResult, when set, is called from worker goroutines as each
	// lookup completes. done counts completions, not input positions.
	OnResult func(done, total int, r feed.Result)
}

func NewRunner(finder Lookuper, workers int, entryTimeout time.Duration) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{finder: finder, workers: workers, timeout: entryTimeout}
}

// Run looks up a feed for every entry and returns one result per
// entry, in input order. A failed entry becomes its own Error result;
// it never aborts the batch. On cancellation, entries never handed to
// a worker still get an Error result carrying the cancellation reason.
func (r *Runner) Run(ctx context.Context, entries []Entry) []feed.Result {
	out := make([]feed.Result, len(entries))
	if len(entries) == 0 {
		return out
	}

	workers := r.workers
	if workers > len(entries) {
		workers = len(entries)
	}

	jobCh := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				out[idx] = r.process(ctx, entries[idx])

				if r.OnResult != nil {
					mu.Lock()
					done++
					n := done
					mu.Unlock()
					r.OnResult(n, len(entries), out[idx])
				}
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(entries); next++ {
		select {
		case jobCh <- next:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobCh)
	wg.Wait()

	for i := next; i < len(entries); i++ {
		out[i] = feed.Result{
			BlogURL:      entries[i].URL,
			FeedType:     feed.TypeUnknown,
			Status:       feed.StatusError,
			ErrorMessage: ctx.Err().Error(),
		}
	}

	return out
}

func (r *Runner) process(ctx context.Context, e Entry) feed.Result {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.finder.Lookup(ctx, e.URL)
}

// ProcessFile reads entries from inPath, runs the batch, and writes
// one output row per entry to outPath.
func (r *Runner) ProcessFile(ctx context.Context, inPath, outPath string) (Summary, error) {
	entries, skipped, err := ReadEntries(inPath)
	if err != nil {
		return Summary{}, err
	}

	results := r.Run(ctx, entries)

	if err := WriteResults(outPath, results); err != nil {
		return Summary{}, err
	}

	s := Summary{Total: len(results), SkippedRows: skipped}
	for _, res := range results {
		switch res.Status {
		case feed.StatusFound:
			s.Found++
		case feed.StatusNotFound:
			s.NotFound++
		default:
			s.Errors++
		}
	}
	return s, nil
}
