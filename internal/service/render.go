package service

import (
	"errors"
	"fmt"

	"github.com/blargg/internal/db"
)

// ErrFormatNotSupported is returned when an entry declares a content
// format that has no renderer yet.
var ErrFormatNotSupported = errors.New("content format not supported")

// RenderContent converts raw author content into storable HTML. It is a
// pure function of the format and the raw text; the save orchestration
// calls it explicitly and persists nothing on failure.
//
// HTML passes through untouched. No sanitization happens here; callers
// treat rendered content as trusted. Markdown and reStructuredText are
// declared formats without a renderer and reject the save.
func RenderContent(format db.ContentFormat, raw string) (string, error) {
	switch format {
	case db.FormatHTML:
		return raw, nil
	case db.FormatMarkdown, db.FormatRST:
		return "", fmt.Errorf("%w: %s", ErrFormatNotSupported, format)
	default:
		return "", fmt.Errorf("%w: %q", ErrFormatNotSupported, format)
	}
}
