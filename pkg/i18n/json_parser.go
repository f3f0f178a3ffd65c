package i18n

import (
	"encoding/json"
	"errors"
)

type JSONParser struct{}

func (JSONParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitLanguages(data)
}
