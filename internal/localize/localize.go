// Package localize resolves phrase keys to display strings for a locale.
package localize

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// fallbackLocale is the table every deployment ships complete.
const fallbackLocale = "en"

// Localizer resolves phrase keys for one locale. Keys missing from the
// locale's table fall back to English, then to the key itself.
type Localizer struct {
	locale   string
	phrases  map[string]string
	fallback map[string]string
}

// New loads the phrase table best matching the requested locale tag.
// Unsupported or malformed tags resolve to English; Locale reports which
// table was picked.
func New(locale string) (*Localizer, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	matched := matchLocale(locale, tables)
	return &Localizer{
		locale:   matched,
		phrases:  tables[matched],
		fallback: tables[fallbackLocale],
	}, nil
}

// Locale returns the locale the phrases are resolved for.
func (l *Localizer) Locale() string {
	return l.locale
}

// Translate returns the phrase filed under key.
func (l *Localizer) Translate(key string) string {
	if phrase, ok := l.phrases[key]; ok {
		return phrase
	}
	if phrase, ok := l.fallback[key]; ok {
		return phrase
	}
	return key
}

// TranslateWith returns the phrase filed under key with each {name}
// token replaced by its substitution value.
func (l *Localizer) TranslateWith(key string, substitutions map[string]string) string {
	phrase := l.Translate(key)
	if len(substitutions) == 0 {
		return phrase
	}
	pairs := make([]string, 0, len(substitutions)*2)
	for token, value := range substitutions {
		pairs = append(pairs, "{"+token+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(phrase)
}

// loadTables parses every embedded locale file into a flat key to phrase
// table, keyed by locale name.
func loadTables() (map[string]map[string]string, error) {
	paths, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, err
	}
	tables := make(map[string]map[string]string, len(paths))
	for _, path := range paths {
		raw, err := localeFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", path, err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", path, err)
		}
		table := make(map[string]string)
		flatten("", doc, table)
		name := strings.TrimSuffix(strings.TrimPrefix(path, "locales/"), ".yaml")
		tables[name] = table
	}
	if _, ok := tables[fallbackLocale]; !ok {
		return nil, fmt.Errorf("locale table %q missing", fallbackLocale)
	}
	return tables, nil
}

// flatten walks nested locale sections, joining section names with "."
// into the dotted keys callers use.
func flatten(prefix string, node map[string]any, into map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			into[full] = v
		case map[string]any:
			flatten(full, v, into)
		}
	}
}

// matchLocale picks the supported table closest to the requested tag.
// English is the matcher's default and wins when nothing else fits.
func matchLocale(locale string, tables map[string]map[string]string) string {
	names := []string{fallbackLocale}
	for name := range tables {
		if name != fallbackLocale {
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])

	tags := make([]language.Tag, len(names))
	for i, name := range names {
		tags[i] = language.Make(name)
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return fallbackLocale
	}
	_, index, _ := language.NewMatcher(tags).Match(requested)
	return names[index]
}
