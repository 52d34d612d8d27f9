// internal/batch/csv.go
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mreyes87/feedscout/internal/feed"
)

var ErrInputFormat = errors.New("invalid input format")

var outputHeader = []string{"blog_url", "feed_url", "feed_type", "status", "error_message"}

// ReadEntries loads blog entries from a CSV file. The header must name
// a blog_url column (url also accepted); blog_title/title is optional.
// Rows too short to carry a URL are skipped, not fatal; the count of
// skipped rows is returned alongside the entries.
func ReadEntries(path string) ([]Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, fmt.Errorf("%w: empty file", ErrInputFormat)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}

	urlCol, titleCol := -1, -1
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF")
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "blog_url", "url":
			if urlCol == -1 {
				urlCol = i
			}
		case "blog_title", "title":
			if titleCol == -1 {
				titleCol = i
			}
		}
	}
	if urlCol == -1 {
		return nil, 0, fmt.Errorf("%w: no blog_url column in header %v", ErrInputFormat, header)
	}

	var entries []Entry
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(rec) <= urlCol {
			skipped++
			continue
		}

		e := Entry{URL: strings.TrimSpace(rec[urlCol])}
		if titleCol >= 0 && titleCol < len(rec) {
			e.Title = strings.TrimSpace(rec[titleCol])
		}
		entries = append(entries, e)
	}

	return entries, skipped, nil
}

// WriteResults writes one row per result, in order.
func WriteResults(path string, results []feed.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeResults(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeResults(w io.Writer, results []feed.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{r.BlogURL, r.FeedURL, string(r.FeedType), string(r.Status), r.ErrorMessage}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
