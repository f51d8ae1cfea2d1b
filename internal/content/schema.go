package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

// schemaValidator checks decoded bundles against bundle.schema.json.
type schemaValidator struct {
	schema *jsonschema.Schema
}

func newSchemaValidator(fsys afero.Fs) (*schemaValidator, error) {
	data, err := afero.ReadFile(fsys, schemaFile)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
		data, err = embedded.ReadFile("data/" + schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("content: read schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaFile, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("content: load schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("content: compile schema: %w", err)
	}
	return &schemaValidator{schema: compiled}, nil
}

// Validate normalises b through JSON so the schema sees plain maps, slices
// and float64 numbers.
func (v *schemaValidator) Validate(b *Bundle) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("normalize bundle: %w", err)
	}
	if err := v.schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return nil
}
