package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	categorySlugRegex = regexp.MustCompile(`^[a-z0-9-]{2,48}$`)
	slugJunk          = regexp.MustCompile(`[^a-z0-9]+`)
)

var reservedCategorySlugs = map[string]struct{}{
	"new":     {},
	"all":     {},
	"admin":   {},
	"follow":  {},
	"api":     {},
	"swagger": {},
}

// Slugify lower-cases name and collapses every run of other characters into one hyphen.
func Slugify(name string) string {
	slug := slugJunk.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

// ValidateCategorySlug validates slug format and reserved names.
func ValidateCategorySlug(slug string) error {
	if !categorySlugRegex.MatchString(slug) {
		return errors.New("slug must be 2-48 characters of lowercase letters, numbers and hyphens")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return errors.New("slug cannot start or end with a hyphen")
	}
	if _, reserved := reservedCategorySlugs[slug]; reserved {
		return errors.New("slug is reserved")
	}
	return nil
}
