package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml data/*.json
var embedded embed.FS

const (
	partnersFile = "partners.yaml"
	schemaFile   = "bundle.schema.json"
)

// Store is the immutable, language-keyed content table. It is safe for
// concurrent use because nothing mutates it after Load returns.
type Store struct {
	bundles   [languageCount]*Bundle
	strategic []Partner
	media     []Partner
}

// Bundle returns the bundle for l. Every Language constant has a bundle once
// Load has succeeded, so the lookup cannot fail.
func (s *Store) Bundle(l Language) *Bundle {
	return s.bundles[l]
}

// StrategicPartners returns the partner list shown in the social proof marquee.
func (s *Store) StrategicPartners() []Partner {
	return s.strategic
}

// MediaPartners returns the partner list shown in the media section marquee.
func (s *Store) MediaPartners() []Partner {
	return s.media
}

// EmbeddedFS exposes the bundled content directory as a read-only afero
// filesystem rooted at the data directory.
func EmbeddedFS() afero.Fs {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Errorf("content: embedded data directory missing: %w", err))
	}
	return afero.FromIOFS{FS: sub}
}

// DirFS returns a read-only filesystem rooted at dir on the OS filesystem.
// It is used when CONTENT_DIR overrides the embedded bundles.
func DirFS(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the store built from the embedded bundles. Broken embedded
// data is a build defect, so it panics instead of returning an error.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load(EmbeddedFS())
		if err != nil {
			panic(fmt.Errorf("content: embedded bundles are invalid: %w", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// Load reads one <code>.yaml bundle per language plus partners.yaml from fsys,
// validates each bundle against the bundle schema and verifies that all
// bundles share one shape. The schema is read from fsys when present and
// falls back to the embedded copy.
func Load(fsys afero.Fs) (*Store, error) {
	validator, err := newSchemaValidator(fsys)
	if err != nil {
		return nil, err
	}

	s := &Store{}
	for _, l := range Languages() {
		b, err := readBundle(fsys, l.String()+".yaml")
		if err != nil {
			return nil, fmt.Errorf("content: load %s bundle: %w", l, err)
		}
		if err := validator.Validate(b); err != nil {
			return nil, fmt.Errorf("content: %s bundle: %w", l, err)
		}
		s.bundles[l] = b
	}

	reference := s.bundles[DefaultLanguage]
	for _, l := range Languages() {
		if err := CheckParity(reference, s.bundles[l]); err != nil {
			return nil, fmt.Errorf("content: %s vs %s: %w", DefaultLanguage, l, err)
		}
	}

	s.strategic, s.media, err = readPartners(fsys)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readBundle(fsys afero.Fs, name string) (*Bundle, error) {
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var b Bundle
	if err := decodeStrict(data, &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &b, nil
}

// decodeStrict rejects unknown keys so a typo in a translation file cannot
// silently drop a field.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
