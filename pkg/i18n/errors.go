package i18n

import "errors"

var (
	ErrNilSource         = errors.New("translation source is nil")
	ErrEmptyLanguageCode = errors.New("empty language code")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")

	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrNoTranslationFiles    = errors.New("no translation files found")
)
