package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Translator resolves message keys to localized text. Catalogs are loaded
// once in NewTranslator and never modified afterwards.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads catalogs from source.
func NewTranslator(ctx context.Context, source Source, options ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil messages for language %q", ErrInvalidStructure, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the languages with a catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language that best fits the preferences,
// or the default language.
func (t *Translator) Match(preferred ...string) string {
	return MatchLanguage(t.SupportedLanguages(), t.defaultLang, preferred...)
}

// HasTranslation reports whether lang itself, without fallback, has key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookupIn(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from values.
// A missing key yields the key itself.
func (t *Translator) T(lang, key string, values map[string]any) string {
	return t.Td(lang, key, key, values)
}

// Td is T with an explicit fallback for a missing key. The fallback gets the
// same placeholder substitution.
func (t *Translator) Td(lang, key, fallback string, values map[string]any) string {
	for _, l := range t.candidates(lang) {
		if msg, ok := t.lookupIn(l, key); ok {
			return substitute(msg, values)
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return substitute(fallback, values)
}

// candidates lists lang, its base language and the default, without repeats.
func (t *Translator) candidates(lang string) []string {
	out := make([]string, 0, 3)
	add := func(l string) {
		if l != "" && !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	add(lang)
	if i := strings.IndexByte(lang, '-'); i > 0 {
		add(lang[:i])
	}
	add(t.defaultLang)
	return out
}

// lookupIn walks a dot-separated key through the nested catalog of lang.
func (t *Translator) lookupIn(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return messageString(val)
		}
		if current, ok = asMessageMap(val); !ok {
			return "", false
		}
	}
	return "", false
}

func messageString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func asMessageMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with values[name]. Unknown placeholders are
// left as they are.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
