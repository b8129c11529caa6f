package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/symbol"
	"go.jacobcolvin.com/vec/table"
)

var (
	// ErrReadConfig indicates a config file could not be read.
	ErrReadConfig = errors.New("read config")
	// ErrInvalidConfig indicates a config file is malformed or does not
	// match [Schema].
	ErrInvalidConfig = errors.New("invalid config")
)

// FileName is the base name of the config file.
const FileName = "vec.yaml"

// File is the content of a config file.
type File struct {
	ClockName        string `json:"clockName"        yaml:"clockName"`
	ResetName        string `json:"resetName"        yaml:"resetName"`
	HighActiveSuffix string `json:"highActiveSuffix" yaml:"highActiveSuffix"`
	LowActiveSuffix  string `json:"lowActiveSuffix"  yaml:"lowActiveSuffix"`
	DefaultLabel     string `json:"defaultLabel"     yaml:"defaultLabel"`

	Table  table.Options  `json:"table"  yaml:"table"`
	Symbol symbol.Options `json:"symbol" yaml:"symbol"`
}

// Default returns the configuration used when no file is found. Keys
// missing from a file keep these values.
func Default() File {
	return File{
		ClockName:        entity.DefaultClockName,
		ResetName:        entity.DefaultResetName,
		HighActiveSuffix: entity.DefaultHighActiveSuffix,
		LowActiveSuffix:  entity.DefaultLowActiveSuffix,
		Table:            table.DefaultOptions(),
		Symbol:           symbol.DefaultOptions(),
	}
}

// SearchPaths returns the locations [Load] tries, in order.
func SearchPaths() []string {
	paths := []string{FileName, "." + FileName}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "vec", FileName))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "vec", FileName))
	}

	return append(paths, filepath.Join("/etc", "vec", FileName))
}

// Load reads the config file at path. If path is empty, the first existing
// file of [SearchPaths] is read instead, and [Default] is returned when
// there is none. The returned string is the path that was read, if any.
func Load(path string) (File, string, error) {
	if path != "" {
		f, err := LoadFile(path)
		return f, path, err
	}

	for _, p := range SearchPaths() {
		_, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		f, err := LoadFile(p)

		return f, p, err
	}

	return Default(), "", nil
}

// LoadFile reads and parses the config file at path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse validates data against [Schema] and decodes it over [Default].
func Parse(data []byte) (File, error) {
	f := Default()

	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}

	err := Validate(data)
	if err != nil {
		return File{}, err
	}

	err = yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return f, nil
}

// Validate checks a YAML document against [Schema]. An empty document is
// valid.
func Validate(data []byte) error {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var doc any

	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if doc == nil {
		return nil
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}

	err = resolved.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
