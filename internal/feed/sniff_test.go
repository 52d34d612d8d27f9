package feed

import "testing"

func TestSniffRSS(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Blog</title></channel></rss>`)

	typ, ok := sniffType(body)
	if !ok {
		t.Fatal("expected RSS body to be recognized")
	}
	if typ != TypeRSS {
		t.Errorf("expected RSS, got %s", typ)
	}
}

func TestSniffAtom(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>Blog</title></feed>`)

	typ, ok := sniffType(body)
	if !ok {
		t.Fatal("expected Atom body to be recognized")
	}
	if typ != TypeAtom {
		t.Errorf("expected Atom, got %s", typ)
	}
}

func TestSniffJSONFeed(t *testing.T) {
	body := []byte(`{"version":"https://jsonfeed.org/version/1.1","title":"Blog"}`)

	typ, ok := sniffType(body)
	if !ok {
		t.Fatal("expected JSON feed body to be recognized")
	}
	if typ != TypeUnknown {
		t.Errorf("expected Unknown for JSON feed, got %s", typ)
	}
}

func TestSniffHTMLRejected(t *testing.T) {
	body := []byte(`<!DOCTYPE html><html><head><title>Blog</title></head></html>`)

	if _, ok := sniffType(body); ok {
		t.Error("expected HTML body to be rejected")
	}
}

func TestContentTypeMapping(t *testing.T) {
	if typ, ok := typeFromContentType("application/rss+xml; charset=utf-8"); !ok || typ != TypeRSS {
		t.Errorf("expected RSS, got %s ok=%v", typ, ok)
	}
	if typ, ok := typeFromContentType("application/atom+xml"); !ok || typ != TypeAtom {
		t.Errorf("expected Atom, got %s ok=%v", typ, ok)
	}
	if typ, ok := typeFromContentType("application/feed+json"); !ok || typ != TypeUnknown {
		t.Errorf("expected Unknown, got %s ok=%v", typ, ok)
	}
	if _, ok := typeFromContentType("text/xml"); ok {
		t.Error("expected generic XML content type to be rejected")
	}
	if _, ok := typeFromContentType("text/html; charset=utf-8"); ok {
		t.Error("expected HTML content type to be rejected")
	}
}
