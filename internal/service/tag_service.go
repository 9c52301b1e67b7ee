package service

import (
	"errors"
	"strings"

	"github.com/blargg/internal/db"
	"github.com/blargg/internal/slug"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagInUse    = errors.New("tag is associated with entries")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// TagUsage 描述标签在条目中的使用次数
type TagUsage struct {
	ID    uint
	Name  string
	Slug  string
	Count int64
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// ParseTagString splits raw comma-separated tag text into normalized,
// de-duplicated tokens. Empty tokens are dropped and input order is
// kept only for this call; stored tags are retrieved ordered by name.
func ParseTagString(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// CreateTags parses the entry's tag string and attaches the matching
// tags to the already-persisted entry row. It runs outside the entry's
// save transaction. Associations are append-only: tokens removed from
// the tag string never detach previously attached tags. Re-running on
// the same tag string creates no duplicate rows or associations.
func (s *TagService) CreateTags(entry *db.Entry) error {
	tokens := ParseTagString(entry.TagString)
	if len(tokens) == 0 {
		return nil
	}

	var current []db.Tag
	if err := s.db.Model(entry).Association("Tags").Find(&current); err != nil {
		return err
	}
	attached := make(map[uint]struct{}, len(current))
	for _, tag := range current {
		attached[tag.ID] = struct{}{}
	}

	for _, token := range tokens {
		tag, err := s.getOrCreate(token)
		if err != nil {
			return err
		}
		if _, ok := attached[tag.ID]; ok {
			continue
		}
		if err := s.db.Model(entry).Association("Tags").Append(tag); err != nil {
			return err
		}
		attached[tag.ID] = struct{}{}
	}

	return nil
}

// getOrCreate returns the tag for a normalized name, creating it when
// absent. A duplicate-key failure on create means someone else owns the
// slug already, either a concurrent save of the same name or a
// differently spelled name normalizing to the same slug, so the
// existing row is re-fetched by slug and reused instead of erroring.
func (s *TagService) getOrCreate(name string) (*db.Tag, error) {
	var tag db.Tag
	err := s.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = db.Tag{Name: name}
	if createErr := s.db.Create(&tag).Error; createErr != nil {
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return nil, createErr
		}
		if err := s.db.Where("slug = ?", slug.Make(name)).First(&tag).Error; err != nil {
			return nil, err
		}
	}

	return &tag, nil
}

// List returns all tags ordered by name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetBySlug fetches a single tag by its slug.
func (s *TagService) GetBySlug(tagSlug string) (*db.Tag, error) {
	var tag db.Tag
	if err := s.db.Where("slug = ?", tagSlug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Usage 返回标签的使用统计，按名称排序
func (s *TagService) Usage() ([]TagUsage, error) {
	var rows []TagUsage
	if err := s.db.Table("tags").
		Select("tags.id, tags.name, tags.slug, COUNT(entry_tags.entry_id) AS count").
		Joins("LEFT JOIN entry_tags ON entry_tags.tag_id = tags.id").
		Where("tags.deleted_at IS NULL").
		Group("tags.id, tags.name, tags.slug").
		Order("tags.name asc").
		Order("tags.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a tag if it is not associated with entries.
func (s *TagService) Delete(id uint) error {
	var tag db.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	count, err := s.entryUsageCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTagInUse
	}

	return s.db.Unscoped().Delete(&tag).Error
}

func (s *TagService) entryUsageCount(id uint) (int64, error) {
	var count int64
	if err := s.db.Model(&db.Entry{}).
		Joins("JOIN entry_tags ON entries.id = entry_tags.entry_id").
		Where("entry_tags.tag_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
