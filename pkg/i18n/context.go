package i18n

import (
	"context"
)

type languageContextKey struct{}

// WithLanguage stores the selected language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// Language returns the language stored in ctx, or DefaultLanguage.
func Language(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// LanguageKey is the context key used by WithLanguage, for log extractors.
func LanguageKey() any {
	return languageContextKey{}
}
