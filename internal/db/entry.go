package db

import (
	"fmt"
	"html/template"
	"time"

	"github.com/blargg/internal/urls"
	"gorm.io/gorm"
)

// ContentFormat 标识原始内容的书写格式
type ContentFormat string

// Supported values for ContentFormat. Only HTML currently renders;
// markdown and reStructuredText are declared but reject saves until a
// real renderer lands.
const (
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "md"
	FormatRST      ContentFormat = "rst"
)

// Entry 定义了文章模型
type Entry struct {
	gorm.Model
	SiteID   uint
	Site     Site
	AuthorID uint
	Author   User

	Title           string        `gorm:"size:256"`
	RawContent      string        // content as the author entered it
	ContentFormat   ContentFormat `gorm:"size:4"`
	RenderedContent string        // derived from RawContent on every save

	Published   bool
	PublishedOn *time.Time

	// Slug is assigned once and survives later title edits; DateSlug is
	// recomputed on every save.
	Slug     string `gorm:"size:255;uniqueIndex"`
	DateSlug string `gorm:"size:255;uniqueIndex"`

	TagString string // raw comma-separated tag text from the author
	Tags      []Tag  `gorm:"many2many:entry_tags;"`
}

// Content returns the rendered body for direct template embedding.
// RenderedContent is trusted as-is; sanitization is the author's
// responsibility upstream and nothing is escaped here.
func (e *Entry) Content() template.HTML {
	return template.HTML(e.RenderedContent)
}

// CrosspostedContent appends an attribution block pointing readers back
// to the canonical location of the entry. The Site association must be
// loaded for the link to carry a domain.
func (e *Entry) CrosspostedContent() template.HTML {
	link := fmt.Sprintf("https://%s%s", e.Site.Domain, e.AbsoluteURL())
	attribution := fmt.Sprintf(
		`<p class="attribution">This entry was originally published at <a href="%s">%s</a>.</p>`,
		link, link,
	)
	return e.Content() + template.HTML("\n"+attribution)
}

// AbsoluteURL returns the dated detail path once a publish date exists,
// and the bare slug path before that.
func (e *Entry) AbsoluteURL() string {
	if e.PublishedOn != nil {
		return urls.MustReverse(urls.EntryDetail,
			e.PublishedOn.Year(), int(e.PublishedOn.Month()), e.PublishedOn.Day(), e.Slug)
	}
	return urls.MustReverse(urls.EntryDetail, e.Slug)
}
