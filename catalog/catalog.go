// Package catalog reads and writes filter definition catalogs: YAML (or
// JSON/TOML) files listing filters and chains with their parameter
// settings.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
)

// Version is the catalog format version written by Save.
const Version = 1

var (
	// ErrDuplicateKey is returned when two catalog entries share a key.
	ErrDuplicateKey = errors.New("catalog: duplicate filter key")

	// ErrUnsupportedVersion is returned for catalogs newer than Version.
	ErrUnsupportedVersion = errors.New("catalog: unsupported version")
)

// Catalog is a list of filter definitions.
type Catalog struct {
	Version int                 `yaml:"version" mapstructure:"version"`
	Lookups string              `yaml:"lookups,omitempty" mapstructure:"lookups"`
	Filters []filter.Definition `yaml:"filters" mapstructure:"filters"`
}

// Load reads a catalog file. The format follows the file extension.
// GGFX_LOOKUPS in the environment overrides the lookup asset directory.
func Load(path string) (*Catalog, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	if c.Lookups != "" && !filepath.IsAbs(c.Lookups) {
		c.Lookups = filepath.Join(filepath.Dir(path), c.Lookups)
	}
	ggfx.Logger().Info("catalog loaded", "path", path, "filters", len(c.Filters))
	return c, nil
}

// Read decodes a catalog in the given format ("yaml", "json", "toml").
func Read(r io.Reader, format string) (*Catalog, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("version", Version)
	v.SetEnvPrefix("GGFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("lookups")
	return v
}

func decode(v *viper.Viper) (*Catalog, error) {
	var c Catalog
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the version, key uniqueness and every definition.
func (c *Catalog) Validate() error {
	if c.Version > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	seen := make(map[string]bool, len(c.Filters))
	for i := range c.Filters {
		d := &c.Filters[i]
		if seen[d.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, d.Key)
		}
		seen[d.Key] = true
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the definition with key.
func (c *Catalog) Find(key string) (filter.Definition, bool) {
	for _, d := range c.Filters {
		if d.Key == key {
			return d, true
		}
	}
	return filter.Definition{}, false
}

// Keys returns the entry keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.Filters))
	for i, d := range c.Filters {
		keys[i] = d.Key
	}
	return keys
}

// Put adds def, replacing an entry with the same key.
func (c *Catalog) Put(def filter.Definition) {
	for i, d := range c.Filters {
		if d.Key == def.Key {
			c.Filters[i] = def
			return
		}
	}
	c.Filters = append(c.Filters, def)
}

// Encode writes the catalog as YAML.
func (c *Catalog) Encode(w io.Writer) error {
	if c.Version == 0 {
		c.Version = Version
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	return enc.Close()
}

// Save writes the catalog to path as YAML.
func (c *Catalog) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // catalogs are not secret
		return fmt.Errorf("catalog: save %s: %w", path, err)
	}
	return nil
}
