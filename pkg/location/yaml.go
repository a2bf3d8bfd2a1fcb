package location

import (
	"context"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a list of countries from r and builds a catalog from it.
func ParseYAML(ctx context.Context, r io.Reader) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var countries []Country
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&countries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return New(countries...)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return ParseYAML(ctx, f)
}
