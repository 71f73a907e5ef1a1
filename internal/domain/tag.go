package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTagSlugLength        = 50
	MaxTagNameLength        = 50
	MaxTagDescriptionLength = 1000
)

// tagNamespace scopes deterministic tag IDs so the same slug yields the same
// ID across databases and restarts.
var tagNamespace = uuid.MustParse("6f1f2a52-7c1e-4d3b-9a57-4b0f6a1c9e21")

// Tag is a topical label. Slug is the stable external key; both Slug and ID
// never change after creation.
type Tag struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	UsageCount  int
}

// TagDefinition is one entry of a seed catalog.
type TagDefinition struct {
	Slug        string
	Name        string
	Description string
}

// TagCatalog is a versioned, ordered list of tag definitions.
type TagCatalog struct {
	Version int
	Tags    []TagDefinition
}

// TagID derives the identifier of the tag with the given slug.
func TagID(slug string) uuid.UUID {
	return uuid.NewSHA1(tagNamespace, []byte(slug))
}

// NewTag builds a tag with zero usage from a definition.
func NewTag(def TagDefinition) Tag {
	return Tag{
		ID:          TagID(def.Slug),
		Slug:        def.Slug,
		Name:        def.Name,
		Description: def.Description,
	}
}

// SameAttributes reports whether the tag already carries the definition's data.
func (t Tag) SameAttributes(def TagDefinition) bool {
	return t.Slug == def.Slug && t.Name == def.Name && t.Description == def.Description
}

// Validate checks slug format and field limits.
func (d TagDefinition) Validate() error {
	var errs []FieldError

	switch {
	case d.Slug == "":
		errs = append(errs, FieldError{Field: "slug", Message: "required"})
	case len(d.Slug) > MaxTagSlugLength:
		errs = append(errs, FieldError{Field: "slug", Message: fmt.Sprintf("max %d characters", MaxTagSlugLength)})
	case NormalizeSlug(d.Slug) != d.Slug:
		errs = append(errs, FieldError{Field: "slug", Message: "must contain only lowercase letters, digits and dashes"})
	}

	if d.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(d.Name) > MaxTagNameLength {
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxTagNameLength)})
	}

	if utf8.RuneCountInString(d.Description) > MaxTagDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxTagDescriptionLength)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Validate checks every definition and rejects duplicate slugs inside the catalog.
func (c TagCatalog) Validate() error {
	if c.Version < 1 {
		return NewValidationError("version", "must be positive")
	}
	seen := make(map[string]struct{}, len(c.Tags))
	for i, def := range c.Tags {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("tag %d (%q): %w", i, def.Slug, err)
		}
		if _, dup := seen[def.Slug]; dup {
			return NewValidationError("tags", fmt.Sprintf("duplicate slug %q", def.Slug))
		}
		seen[def.Slug] = struct{}{}
	}
	return nil
}
