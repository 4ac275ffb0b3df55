// Package content loads technology datasets from YAML and keeps them in
// sync with the files on disk.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/techcanvas"
)

// Dataset is a stage catalog plus the technologies placed on it.
type Dataset struct {
	// Stages overrides the built-in catalog when non-empty.
	Stages       []techcanvas.Stage      `yaml:"stages,omitempty"`
	Technologies []techcanvas.Technology `yaml:"technologies"`
}

// Load reads a dataset from path. A regular file holds a whole Dataset. A
// directory holds one technology per .yaml or .yml file, read in file name
// order, plus an optional stages.yaml with a top-level stages list.
func Load(path string) (Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("content: load %s: %w", path, err)
	}
	if info.IsDir() {
		return loadDir(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("content: load %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a dataset document. name is only used in error messages.
func Parse(data []byte, name string) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("content: unmarshal %s: %w", name, err)
	}
	return ds, nil
}

func loadDir(dir string) (Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Dataset{}, fmt.Errorf("content: load %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsDataFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var ds Dataset
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Dataset{}, fmt.Errorf("content: load %s: %w", path, err)
		}
		if isStagesFile(name) {
			var doc struct {
				Stages []techcanvas.Stage `yaml:"stages"`
			}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return Dataset{}, fmt.Errorf("content: unmarshal %s: %w", path, err)
			}
			ds.Stages = doc.Stages
			continue
		}
		var tech techcanvas.Technology
		if err := yaml.Unmarshal(data, &tech); err != nil {
			return Dataset{}, fmt.Errorf("content: unmarshal %s: %w", path, err)
		}
		ds.Technologies = append(ds.Technologies, tech)
	}
	return ds, nil
}

// IsDataFile reports whether path names a YAML file.
func IsDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isStagesFile(name string) bool {
	base := strings.TrimSuffix(strings.ToLower(name), filepath.Ext(name))
	return base == "stages"
}

// StagesOrDefault returns the dataset's stages, or the built-in catalog
// when it has none.
func (d Dataset) StagesOrDefault() []techcanvas.Stage {
	if len(d.Stages) > 0 {
		return d.Stages
	}
	return techcanvas.DefaultStages()
}
