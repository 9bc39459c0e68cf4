package domain

import (
	"regexp"
	"strings"
)

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugDisallowed   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify строит slug из заголовка тура:
// нижний регистр, удаление спецсимволов, пробелы и повторные дефисы -> один дефис
// Функция идемпотентна: Slugify(Slugify(x)) == Slugify(x)
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug проверяет формат slug: непустой, только [a-z0-9-]
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// FilterBlank возвращает элементы списка, непустые после trim
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed(item) != "" {
			out = append(out, strings.TrimSpace(item))
		}
	}
	return out
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
