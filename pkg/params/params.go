// Package params loads the generator parameter file (params.json by default).
// JSON, YAML and TOML are accepted; the format is picked from the file
// extension. Files with other extensions are read as JSON when they start with
// '{' or '[', and as block-style YAML otherwise.
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is resolved against the working directory.
const DefaultPath = "params.json"

// VersionKey names the required entry.
const VersionKey = "version"

// ErrVersionRequired is returned when the file has no usable version entry.
var ErrVersionRequired = errors.New("version is required")

// Params is the flat configuration mapping read from disk.
type Params struct {
	Version string
	// Values holds every top-level entry, version included.
	Values map[string]any
}

// Load reads and decodes path. The version entry must be present and must be
// a string; it is not validated here.
func Load(path string) (Params, error) {
	if strings.TrimSpace(path) == "" {
		return Params{}, errors.New("params: path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("params: read %s: %w", path, err)
	}

	values, err := decode(data, path)
	if err != nil {
		return Params{}, err
	}

	raw, ok := values[VersionKey]
	if !ok || raw == nil {
		return Params{}, fmt.Errorf("params: %s: %w", path, ErrVersionRequired)
	}
	version, ok := raw.(string)
	if !ok {
		return Params{}, fmt.Errorf("params: %s: version must be a string, got %T", path, raw)
	}

	return Params{Version: version, Values: values}, nil
}

// Write encodes p to path in the format implied by its extension, replacing
// any existing file.
func Write(path string, p Params) error {
	values := make(map[string]any, len(p.Values)+1)
	for key, value := range p.Values {
		values[key] = value
	}
	values[VersionKey] = p.Version

	var (
		payload []byte
		err     error
	)
	switch format(path) {
	case formatYAML:
		payload, err = yaml.Marshal(values)
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(values)
		payload = buf.Bytes()
	default:
		payload, err = json.MarshalIndent(values, "", "  ")
		payload = append(payload, '\n')
	}
	if err != nil {
		return fmt.Errorf("params: encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("params: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("params: write %s: %w", path, err)
	}
	return nil
}

type fileFormat int

const (
	formatUnknown fileFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

func format(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatUnknown
	}
}

func decode(data []byte, path string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("params: file %s is empty", path)
	}

	values := map[string]any{}
	switch format(path) {
	case formatJSON:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("params: parse %s: %w", path, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("params: parse %s: %w", path, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("params: parse %s: %w", path, err)
		}
	default:
		err := json.Unmarshal(data, &values)
		if err == nil {
			return values, nil
		}
		if looksLikeJSON(data) {
			return nil, fmt.Errorf("params: parse %s: %w", path, err)
		}
		values = map[string]any{}
		if err := yaml.Unmarshal(data, &values); err == nil {
			return values, nil
		}
		return nil, fmt.Errorf("params: parse %s: invalid JSON or YAML", path)
	}
	return values, nil
}

// looksLikeJSON reports whether data opens a JSON object or array. Such input
// is never retried as YAML, whose flow maps would accept malformed JSON.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
