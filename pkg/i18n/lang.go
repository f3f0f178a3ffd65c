package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when no preference matches.
const DefaultLanguage = "en"

// MatchLanguage picks the entry of supported that best fits the preferred
// language tags, most preferred first. Tags that do not parse are ignored.
// When nothing matches, fallback is returned.
func MatchLanguage(supported []string, fallback string, preferred ...string) string {
	if len(supported) == 0 {
		return fallback
	}

	names := make([]string, 0, len(supported)+1)
	if fallback != "" && slices.Contains(supported, fallback) {
		names = append(names, fallback)
	}
	tags := make([]language.Tag, 0, len(supported)+1)
	for _, name := range names {
		tags = append(tags, language.Make(name))
	}
	for _, name := range supported {
		if name == fallback {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		names = append(names, name)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	var desired []language.Tag
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			desired = append(desired, tag)
		}
	}
	if len(desired) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return names[index]
}

// LocaleFromEnv converts a POSIX locale value such as "de_DE.UTF-8" or
// "sr_RS@latin" into a BCP 47 tag ("de-DE", "sr-RS"). The C and POSIX
// locales and empty values yield "".
func LocaleFromEnv(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
