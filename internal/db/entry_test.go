package db

import (
	"strings"
	"testing"
	"time"
)

func TestEntryContentIsUnescapedPassThrough(t *testing.T) {
	entry := Entry{RenderedContent: `<p>Hello & "welcome"</p>`}
	if string(entry.Content()) != entry.RenderedContent {
		t.Fatalf("expected content to pass through unescaped, got %q", entry.Content())
	}
}

func TestEntryAbsoluteURLPublished(t *testing.T) {
	published := time.Date(2012, time.March, 4, 10, 0, 0, 0, time.UTC)
	entry := Entry{Slug: "foo-bar", PublishedOn: &published}

	if got := entry.AbsoluteURL(); got != "/entries/2012/03/04/foo-bar" {
		t.Fatalf("expected dated detail path, got %q", got)
	}
}

func TestEntryAbsoluteURLUnpublished(t *testing.T) {
	entry := Entry{Slug: "foo-bar"}
	if got := entry.AbsoluteURL(); got != "/entries/foo-bar" {
		t.Fatalf("expected bare slug path, got %q", got)
	}
}

func TestEntryCrosspostedContentRendersCanonicalLinkTwice(t *testing.T) {
	published := time.Date(2012, time.March, 4, 10, 0, 0, 0, time.UTC)
	entry := Entry{
		Site:            Site{Name: "Example", Domain: "example.com"},
		Slug:            "foo-bar",
		PublishedOn:     &published,
		RenderedContent: "<p>body</p>",
	}

	got := string(entry.CrosspostedContent())
	link := "https://example.com/entries/2012/03/04/foo-bar"

	if !strings.HasPrefix(got, "<p>body</p>") {
		t.Fatalf("expected content to lead the crosspost body, got %q", got)
	}
	if strings.Count(got, link) != 2 {
		t.Fatalf("expected canonical link twice (href and text), got %q", got)
	}
}
