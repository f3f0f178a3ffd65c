package i18n

import (
	"path"
	"strings"
)

// Parser decodes a catalog file into language -> nested messages.
type Parser interface {
	Parse(content []byte) (map[string]map[string]any, error)
}

// ParserForFile picks a parser by file extension, or returns nil when the
// extension is not a catalog format.
func ParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	default:
		return nil
	}
}
