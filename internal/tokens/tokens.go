package tokens

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

// DefaultPropertyColor is the fallback used when a color-set key has no
// entry in global.colors.property_sets. Unknown or custom color-set names
// are tolerated on purpose; every other missing token is fatal.
const DefaultPropertyColor = "#228B22"

// Store is the read-only design-token tree. It is never mutated after
// construction, so a single Store is safe for concurrent readers.
type Store struct {
	tree map[string]any
}

// NewStore wraps an already-built token tree. Tests use this to inject a
// fabricated tree without touching the filesystem.
func NewStore(tree map[string]any) *Store {
	return &Store{tree: tree}
}

// Load reads and decodes a design-token file from disk.
func Load(path string) (*Store, error) {
	var tree map[string]any
	if _, err := toml.DecodeFile(path, &tree); err != nil {
		return nil, ddgerrors.NewTokenLoadError(path, err)
	}
	return &Store{tree: tree}, nil
}

var (
	loadOnce sync.Once
	cached   *Store
	cacheErr error
)

// LoadCached loads the design-token file at most once per process. Every
// subsequent call returns the same Store (or the same load failure), so
// concurrent first access from multiple render workers triggers a single
// disk read.
func LoadCached(path string) (*Store, error) {
	loadOnce.Do(func() {
		cached, cacheErr = Load(path)
	})
	return cached, cacheErr
}

// lookup walks the tree along a dotted path.
func (s *Store) lookup(path string) (any, error) {
	var node any = s.tree
	for _, part := range strings.Split(path, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil, ddgerrors.NewMissingTokenKeyError(path)
		}
		node, ok = table[part]
		if !ok {
			return nil, ddgerrors.NewMissingTokenKeyError(path)
		}
	}
	return node, nil
}

// Int resolves a required integer token.
func (s *Store) Int(path string) (int, error) {
	node, err := s.lookup(path)
	if err != nil {
		return 0, err
	}
	switch v := node.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("design token %s: expected integer, got %T", path, node)
	}
}

// String resolves a required string token.
func (s *Store) String(path string) (string, error) {
	node, err := s.lookup(path)
	if err != nil {
		return "", err
	}
	v, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("design token %s: expected string, got %T", path, node)
	}
	return v, nil
}

// StringMap resolves a required table of string values.
func (s *Store) StringMap(path string) (map[string]string, error) {
	node, err := s.lookup(path)
	if err != nil {
		return nil, err
	}
	table, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("design token %s: expected table, got %T", path, node)
	}
	out := make(map[string]string, len(table))
	for key, value := range table {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("design token %s.%s: expected string, got %T", path, key, value)
		}
		out[key] = str
	}
	return out, nil
}

// PropertySetColor resolves a color-set key to its hex color, falling back
// to DefaultPropertyColor for unrecognized keys. The property_sets table
// itself is still required.
func (s *Store) PropertySetColor(key string) (string, error) {
	sets, err := s.StringMap("global.colors.property_sets")
	if err != nil {
		return "", err
	}
	if hex, ok := sets[key]; ok {
		return hex, nil
	}
	return DefaultPropertyColor, nil
}

// PropertySetColors maps a list of color-set keys through PropertySetColor.
func (s *Store) PropertySetColors(keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		hex, err := s.PropertySetColor(key)
		if err != nil {
			return nil, err
		}
		out = append(out, hex)
	}
	return out, nil
}
