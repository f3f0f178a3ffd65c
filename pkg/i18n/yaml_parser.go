package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func (YAMLParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitLanguages(data)
}

// splitLanguages checks that every top level entry is a message map.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = messages
	}
	return result, nil
}
