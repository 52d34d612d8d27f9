package batch

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mreyes87/feedscout/internal/feed"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func TestReadEntries(t *testing.T) {
	path := writeTempCSV(t, "blog_title,blog_url\nMy Blog,https://example.com\n,https://other.org/blog\n")

	entries, skipped, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "My Blog" || entries[0].URL != "https://example.com" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Title != "" {
		t.Errorf("expected empty title, got %q", entries[1].Title)
	}
}

func TestReadEntriesColumnAliases(t *testing.T) {
	path := writeTempCSV(t, "Title,URL\nMy Blog,example.com\n")

	entries, _, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].URL != "example.com" {
		t.Errorf("expected url alias to be accepted, got %v", entries)
	}
}

func TestReadEntriesColumnOrderIndependent(t *testing.T) {
	path := writeTempCSV(t, "blog_url,blog_title\nhttps://example.com,My Blog\n")

	entries, _, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].URL != "https://example.com" || entries[0].Title != "My Blog" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestReadEntriesMissingURLColumn(t *testing.T) {
	path := writeTempCSV(t, "name,homepage\nMy Blog,https://example.com\n")

	_, _, err := ReadEntries(path)
	if !errors.Is(err, ErrInputFormat) {
		t.Errorf("expected ErrInputFormat, got %v", err)
	}
}

func TestReadEntriesEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, _, err := ReadEntries(path)
	if !errors.Is(err, ErrInputFormat) {
		t.Errorf("expected ErrInputFormat, got %v", err)
	}
}

func TestReadEntriesSkipsShortRows(t *testing.T) {
	path := writeTempCSV(t, "blog_title,blog_url\nonly a title\nGood,https://example.com\n")

	entries, skipped, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}
	if len(entries) != 1 || entries[0].URL != "https://example.com" {
		t.Errorf("expected surviving entry, got %v", entries)
	}
}

func TestReadEntriesKeepsEmptyURLRows(t *testing.T) {
	path := writeTempCSV(t, "blog_title,blog_url\nNo URL,\n")

	entries, skipped, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
	if len(entries) != 1 || entries[0].URL != "" {
		t.Errorf("expected empty-URL entry kept, got %v", entries)
	}
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	results := []feed.Result{
		{BlogURL: "https://a.com", FeedURL: "https://a.com/feed", FeedType: feed.TypeRSS, Status: feed.StatusFound},
		{BlogURL: "https://b.com", FeedType: feed.TypeUnknown, Status: feed.StatusNotFound},
		{BlogURL: "bad url", FeedType: feed.TypeUnknown, Status: feed.StatusError, ErrorMessage: "invalid URL: empty"},
	}

	if err := WriteResults(path, results); err != nil {
		t.Fatalf("failed to write results: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "blog_url,feed_url,feed_type,status,error_message" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "https://a.com,https://a.com/feed,RSS,Found," {
		t.Errorf("unexpected found row: %s", lines[1])
	}
	if lines[2] != "https://b.com,,Unknown,NotFound," {
		t.Errorf("unexpected not-found row: %s", lines[2])
	}
	if lines[3] != "bad url,,Unknown,Error,invalid URL: empty" {
		t.Errorf("unexpected error row: %s", lines[3])
	}
}

func TestWriteResultsQuotesCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	results := []feed.Result{
		{BlogURL: "https://a.com", FeedType: feed.TypeUnknown, Status: feed.StatusError, ErrorMessage: "dial tcp: lookup a.com: no such host, retries exhausted"},
	}

	if err := WriteResults(path, results); err != nil {
		t.Fatalf("failed to write results: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][4] != results[0].ErrorMessage {
		t.Errorf("expected error message to round-trip, got %q", rows[1][4])
	}
}
