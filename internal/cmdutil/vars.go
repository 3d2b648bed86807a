package cmdutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	oerrors "github.com/modernstack/cli/internal/errors"
)

// ParseVars merges the vars file (if any) with key=value pairs; pairs win.
func ParseVars(varsFile string, pairs []string) (map[string]any, error) {
	vars := make(map[string]any)

	if varsFile != "" {
		fileVars, err := ReadVarsFile(varsFile)
		if err != nil {
			return nil, err
		}
		for key, value := range fileVars {
			vars[key] = value
		}
	}

	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --var %q (expected key=value)", pair), "", "var", "")
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --var %q (empty key)", pair), "", "var", "")
		}
		vars[key] = strings.TrimSpace(val)
	}

	return vars, nil
}

// ReadVarsFile decodes a TOML, YAML or JSON file into a variable map.
// A top-level "variables" table, when present, is used instead of the whole document.
func ReadVarsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vars file: %w: %w", oerrors.ErrRead, err)
	}

	var decoded map[string]any
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &decoded); err != nil {
			return nil, varsParseError(path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, varsParseError(path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, varsParseError(path, err)
		}
	default:
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unsupported vars file extension %q", ext), path, "vars-file",
			"Use a .yaml, .yml, .toml or .json file.")
	}

	if decoded == nil {
		return map[string]any{}, nil
	}

	if nested, ok := decoded["variables"]; ok {
		if asMap, ok := nested.(map[string]any); ok {
			return asMap, nil
		}
	}

	return decoded, nil
}

func varsParseError(path string, err error) error {
	return &oerrors.DetailError{
		Type:     "validation failed",
		Message:  "parsing vars file: " + err.Error(),
		Location: path,
		Field:    "vars-file",
		Cause:    oerrors.ErrValidation,
	}
}
