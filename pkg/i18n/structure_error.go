package i18n

import "fmt"

// StructureError reports a language entry whose value is not a map.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid structure for language %q: expected map, got %T", e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}
