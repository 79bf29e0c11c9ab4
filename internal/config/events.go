package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/branchline"
)

// ErrUnsupportedFormat is returned for event files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported event file format")

// eventFile is the on-disk shape of an event list:
//
//	events:
//	  - id: 1
//	    title: Root Timeline
//	    date: Start
//	    branch: 0
type eventFile struct {
	Events []branchline.Event `yaml:"events" toml:"events"`
}

// LoadEvents reads an event list from a .yaml, .yml or .toml file. An empty
// path returns branchline.DefaultEvents.
func LoadEvents(path string) ([]branchline.Event, error) {
	if path == "" {
		return branchline.DefaultEvents(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return ParseEvents(data, filepath.Ext(path))
}

// ParseEvents decodes an event list in the format named by ext.
func ParseEvents(data []byte, ext string) ([]branchline.Event, error) {
	var f eventFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse events: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse events: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse events: %w: %q", ErrUnsupportedFormat, ext)
	}
	if f.Events == nil {
		f.Events = []branchline.Event{}
	}
	if err := branchline.ValidateEvents(f.Events); err != nil {
		return nil, fmt.Errorf("parse events: %w", err)
	}
	return f.Events, nil
}
