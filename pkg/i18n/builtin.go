package i18n

import "embed"

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Builtin returns the validation catalogs shipped with the package.
func Builtin() Source {
	return FSSource(builtinLocales, "locales")
}
