package service

import (
	"errors"
	"time"

	"github.com/blargg/internal/db"
	"github.com/blargg/internal/events"
	"github.com/blargg/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEntryNotFound = errors.New("entry not found")

// EntryService owns the entry save pipeline and retrieval queries.
type EntryService struct {
	db   *gorm.DB
	tags *TagService
	bus  *events.Bus
	now  func() time.Time
}

// EntryFilter describes filters for listing entries.
type EntryFilter struct {
	TagSlug string
	Page    int
	PerPage int
}

// EntryListResult aggregates paginated list data.
type EntryListResult struct {
	Entries    []db.Entry
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// NewEntryService creates an EntryService instance.
func NewEntryService(gdb *gorm.DB, tags *TagService, bus *events.Bus) *EntryService {
	return &EntryService{db: gdb, tags: tags, bus: bus, now: time.Now}
}

// Save runs the whole pipeline for a new or edited entry:
//
//	render → slug → date-slug → first-publish guard → persist →
//	published notification → tag extraction
//
// Rendering runs first so an unsupported format aborts before any slug
// mutation; a failed save leaves the in-memory entry exactly as the
// caller built it. Tag extraction runs after the row is committed and
// outside its transaction; if it fails the entry exists with stale
// tags, which is the accepted partial-failure mode.
func (s *EntryService) Save(entry *db.Entry) error {
	rendered, err := RenderContent(entry.ContentFormat, entry.RawContent)
	if err != nil {
		return err
	}

	persisted := entry.ID != 0

	s.createSlug(entry)
	s.createDateSlug(entry, persisted)
	entry.RenderedContent = rendered

	// First-publish guard: stamp and notify only while the publish date
	// is unset. Republishing an already dated entry changes neither.
	firePublished := false
	if entry.Published && entry.PublishedOn == nil {
		stamped := s.now()
		entry.PublishedOn = &stamped
		firePublished = true
	}

	// Associations are managed explicitly: tags by the extraction step
	// below, site and author by their own bootstrap paths.
	if err := s.db.Omit(clause.Associations).Save(entry).Error; err != nil {
		return err
	}

	if firePublished {
		s.bus.EmitEntryPublished(events.EntryPublished{
			Entry:      entry,
			OccurredAt: *entry.PublishedOn,
		})
	}

	return s.tags.CreateTags(entry)
}

// Publish marks the entry published and persists immediately. The
// publish date and the published notification are handled by Save's
// first-publish guard, so an entry that has ever been published keeps
// its original date.
func (s *EntryService) Publish(entry *db.Entry) error {
	entry.Published = true
	return s.Save(entry)
}

// Unpublish hides the entry and persists immediately. The publish date
// is retained: it is stamped exactly once per entry, so a later
// republish restores the entry under its original date without firing
// another notification.
func (s *EntryService) Unpublish(entry *db.Entry) error {
	entry.Published = false
	return s.Save(entry)
}

// createSlug derives the slug from the title on first need only; an
// entry keeps its slug across later title edits.
func (s *EntryService) createSlug(entry *db.Entry) {
	if entry.Slug != "" {
		return
	}
	entry.Slug = slug.Make(entry.Title)
}

// createDateSlug recomputes the dated identifier on every save, using
// the slug value derived in the same call.
func (s *EntryService) createDateSlug(entry *db.Entry, persisted bool) {
	d := dateSlugDate(persisted, entry.Published, entry.PublishedOn, entry.UpdatedAt, s.now())
	entry.DateSlug = slug.DatePath(d, entry.Slug)
}

// dateSlugDate picks the calendar date anchoring the date slug. The
// branches take explicit values rather than inspecting the entry:
// never-persisted entries use the moment of save, published entries use
// their publish date, everything else falls back to updatedOn, which
// is the timestamp of the previous save, since the persistence layer
// assigns the new one only after this runs.
func dateSlugDate(persisted, published bool, publishedOn *time.Time, updatedOn, now time.Time) time.Time {
	switch {
	case !persisted:
		return now
	case published && publishedOn != nil:
		return *publishedOn
	default:
		return updatedOn
	}
}

// Get fetches an entry by id with its associations preloaded.
func (s *EntryService) Get(id uint) (*db.Entry, error) {
	return s.first(s.db.Where("entries.id = ?", id))
}

// GetBySlug fetches an entry by its bare slug.
func (s *EntryService) GetBySlug(entrySlug string) (*db.Entry, error) {
	return s.first(s.db.Where("entries.slug = ?", entrySlug))
}

// GetByDateSlug fetches an entry by its dated identifier.
func (s *EntryService) GetByDateSlug(dateSlug string) (*db.Entry, error) {
	return s.first(s.db.Where("entries.date_slug = ?", dateSlug))
}

func (s *EntryService) first(query *gorm.DB) (*db.Entry, error) {
	var entry db.Entry
	if err := query.Preload("Tags", func(q *gorm.DB) *gorm.DB {
		return q.Order("tags.name asc")
	}).Preload("Site").Preload("Author").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ListPublished returns published entries, newest publish date first.
func (s *EntryService) ListPublished(filter EntryFilter) (*EntryListResult, error) {
	result := &EntryListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 10
	}

	countQuery := s.applyFilters(s.db.Model(&db.Entry{}), filter)
	if err := countQuery.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	offset := (result.Page - 1) * result.PerPage

	var entries []db.Entry
	dataQuery := s.applyFilters(
		s.db.Model(&db.Entry{}).
			Preload("Tags", func(q *gorm.DB) *gorm.DB { return q.Order("tags.name asc") }).
			Preload("Site"),
		filter,
	)
	if err := dataQuery.
		Order("entries.published_on desc").
		Order("entries.id desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}

	result.Entries = entries
	return result, nil
}

// Delete removes an entry by id.
func (s *EntryService) Delete(id uint) error {
	return s.db.Delete(&db.Entry{}, id).Error
}

func (s *EntryService) applyFilters(query *gorm.DB, filter EntryFilter) *gorm.DB {
	query = query.Where("entries.published = ?", true)

	if filter.TagSlug != "" {
		subQuery := s.db.Model(&db.Entry{}).
			Select("entries.id").
			Joins("JOIN entry_tags ON entries.id = entry_tags.entry_id").
			Joins("JOIN tags ON tags.id = entry_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug).
			Distinct()
		query = query.Where("entries.id IN (?)", subQuery)
	}

	return query
}
