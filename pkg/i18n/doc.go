// Package i18n localizes validation messages.
//
// Messages live in nested YAML or JSON catalogs keyed by language at the top
// level, with dot-separated keys below it:
//
//	en:
//	  validation:
//	    zip_code: "must be a 5 or 9 digit ZIP code"
//	    integer_range: "must be a whole number between %{min} and %{max}"
//
// A Translator loads catalogs from a Source. Builtin returns the catalogs
// shipped with the package (English, German and Spanish); FSSource reads
// *.yaml, *.yml and *.json files from any fs.FS, and Merge layers sources so
// that a directory of overrides can replace individual messages.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Merge(i18n.Builtin(), i18n.FSSource(os.DirFS(dir), ".")))
//	msg := tr.T("de", "validation.integer_range", map[string]any{"min": 1, "max": 12})
//
// Lookups fall back from a regional tag to its base language ("de-AT" to
// "de") and then to the default language. MatchLanguage picks the best
// supported language for a list of user preferences, and LocaleFromEnv turns
// a POSIX locale such as "de_DE.UTF-8" into a language tag.
//
// A Translator is safe for concurrent use.
package i18n
