package location

import "errors"

var (
	ErrEmptyName        = errors.New("location name cannot be empty")
	ErrDuplicateCountry = errors.New("duplicate country")
	ErrDuplicateState   = errors.New("duplicate state")
	ErrEmptyState       = errors.New("state must list at least one city")
	ErrInvalidPrefix    = errors.New("phone prefix must be '+' followed by digits")

	// ErrFailedToParseYAML is returned when a catalog document cannot be decoded.
	ErrFailedToParseYAML = errors.New("failed to parse location catalog YAML")
	// ErrFailedToReadFile is returned when a catalog file cannot be opened or read.
	ErrFailedToReadFile = errors.New("failed to read location catalog file")
	ErrLoadingCancelled = errors.New("loading location catalog cancelled")
	ErrEmptyCatalog     = errors.New("location catalog contains no countries")
)
