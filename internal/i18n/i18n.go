package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed lang/*.json
var langFS embed.FS

// CookieName is the fixed key the language choice persists under,
// matching the browser-local-storage key the site always used.
const CookieName = "site-language"

// Normalize maps an arbitrary language value to a supported code,
// falling back to the configured default.
func Normalize(lang, def string) string {
	switch lang {
	case "en", "gr":
		return lang
	}
	return def
}

// Bundle is one loaded language file with dot-path key lookup.
type Bundle struct {
	lang string
	data map[string]any
}

// Load parses the embedded bundle for a language code.
func Load(lang string) (*Bundle, error) {
	raw, err := Raw(lang)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("i18n: parse %s bundle: %w", lang, err)
	}
	return &Bundle{lang: lang, data: data}, nil
}

// Raw returns the embedded JSON bundle as served to the client.
func Raw(lang string) ([]byte, error) {
	raw, err := langFS.ReadFile("lang/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("i18n: unknown language %q", lang)
	}
	return raw, nil
}

func (b *Bundle) Lang() string { return b.lang }

// T resolves a dot-separated key ("listing.brand"). A missing key
// returns the key itself so untranslated strings stay visible.
func (b *Bundle) T(key string) string {
	if v, ok := b.Lookup(key); ok {
		return v
	}
	return key
}

// Lookup resolves a dot-separated key, reporting whether it exists.
func (b *Bundle) Lookup(key string) (string, bool) {
	var current any = b.data
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate substitutes {{name}} placeholders; unknown placeholders
// are left as-is.
func Interpolate(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}
