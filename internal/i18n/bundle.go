// Package i18n resolves display strings for the site from nested translation
// tables, with graceful degradation: target language, then the default
// language, then the literal key.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

// DefaultLanguage is the fallback of last resort before literal-key echo.
// Its tree must contain every key path the site references.
const DefaultLanguage = "en"

// Tree is a nested translation table: string keys mapping to either a
// string or a subtree.
type Tree map[string]interface{}

// Bundle holds the per-language translation trees, loaded once at process
// start and immutable afterwards.
type Bundle struct {
	tables      map[string]Tree
	defaultLang string
}

// NewBundle loads every embedded locale file (locales/{code}.json).
func NewBundle() (*Bundle, error) {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	tables := make(map[string]Tree, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := localesFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		var tree Tree
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
		tables[strings.TrimSuffix(name, ".json")] = tree
	}
	if _, ok := tables[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default locale %q missing", DefaultLanguage)
	}
	return &Bundle{tables: tables, defaultLang: DefaultLanguage}, nil
}

// NewBundleFromTables builds a bundle from in-memory tables (tests).
func NewBundleFromTables(tables map[string]Tree, defaultLang string) *Bundle {
	return &Bundle{tables: tables, defaultLang: defaultLang}
}

// Languages returns the supported language codes, sorted, default first.
func (b *Bundle) Languages() []string {
	codes := make([]string, 0, len(b.tables))
	for code := range b.tables {
		if code != b.defaultLang {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return append([]string{b.defaultLang}, codes...)
}

// Supported reports whether lang has a translation table.
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.tables[lang]
	return ok
}

// Table returns the raw tree for a language (nil when unsupported).
func (b *Bundle) Table(lang string) Tree {
	return b.tables[lang]
}

// Resolve returns the display string for a dotted key path in lang. The walk
// descends one segment at a time; at the first segment without a truthy
// child it abandons the primary walk and restarts from the root of the
// default language's tree. If that also fails, the key itself is returned.
// Never errors.
//
// Presence is a truthiness test, so a legitimately-empty-string leaf is
// indistinguishable from a missing key and falls through to the fallback.
// That matches the site's historical behavior and is kept deliberately.
func (b *Bundle) Resolve(lang, key string) string {
	segments := strings.Split(key, ".")
	if v, ok := walk(b.tables[lang], segments); ok {
		return v
	}
	if v, ok := walk(b.tables[b.defaultLang], segments); ok {
		return v
	}
	return key
}

func walk(root Tree, segments []string) (string, bool) {
	if root == nil {
		return "", false
	}
	var current interface{} = map[string]interface{}(root)
	for _, seg := range segments {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		child := node[seg]
		if !truthy(child) {
			return "", false
		}
		current = child
	}
	leaf, ok := current.(string)
	if !ok {
		return "", false
	}
	return leaf, true
}

// truthy mirrors the presence check the site has always used: non-empty
// strings and non-empty subtrees count as present, everything else does not.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case map[string]interface{}:
		return len(t) > 0
	default:
		return false
	}
}
