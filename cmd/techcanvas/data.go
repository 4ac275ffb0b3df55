package main

import (
	_ "embed"
	"fmt"

	"github.com/phanxgames/techcanvas/internal/content"
)

//go:embed data/technologies.yaml
var sampleDataset []byte

// loadDataset reads the dataset at path, or the bundled sample when path is
// empty.
func loadDataset(path string) (content.Dataset, error) {
	if path == "" {
		ds, err := content.Parse(sampleDataset, "bundled sample")
		if err != nil {
			return content.Dataset{}, fmt.Errorf("load sample dataset: %w", err)
		}
		return ds, nil
	}
	return content.Load(path)
}
