// Package config loads bundle defaults from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the bundle root.
const FileName = ".bundle.yaml"

// File mirrors the keys accepted in a defaults file. Pointer fields
// distinguish "unset" from the zero value.
type File struct {
	Language         []string `yaml:"language"`           // Extensions or "all"
	Output           string   `yaml:"output"`             // Destination bundle file
	Note             *bool    `yaml:"note"`               // Prepend source comments
	Sort             string   `yaml:"sort"`               // "name" or "type"
	RemoveEmptyLines *bool    `yaml:"remove_empty_lines"` // Drop blank lines
	Author           string   `yaml:"author"`             // Author comment
	Comment          string   `yaml:"comment"`            // Comment marker
	Exclude          []string `yaml:"exclude"`            // Exclude globs
	IgnoreFile       string   `yaml:"ignore_file"`        // Extra ignore file
	SkipBinary       *bool    `yaml:"skip_binary"`        // Drop binary files
	MaxFileSizeKB    *int     `yaml:"max_file_size_kb"`   // Size limit, 0 disables
	Tree             *bool    `yaml:"tree"`               // Write a file tree header
}

// Load reads the defaults file at path. An empty path means FileName inside
// root. A missing file yields an empty File; an explicitly named file must exist.
func Load(path, root string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &File{}, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return &f, nil
}
