package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/techcanvas"
)

const sampleDataset = `
technologies:
  - title: DDD
    x_axis: architecture
    y_axis: 5
    mastery: 0.6
    tags: [design, modelling]
  - title: Go
    x_axis: implementation
    x_position: 3
    y_axis: 2
    mastery: 0.9
  - title: Terraform
    x_axis: deployment
    y_axis: 2
    mastery: 0.3
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.yaml", sampleDataset)

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Technologies, 3)

	want := techcanvas.Technology{
		Title:   "DDD",
		Stage:   "architecture",
		Depth:   5,
		Mastery: 0.6,
		Tags:    []string{"design", "modelling"},
	}
	if diff := cmp.Diff(want, ds.Technologies[0]); diff != "" {
		t.Errorf("first technology mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3.0, ds.Technologies[1].Position)
	assert.Empty(t, ds.Stages)
	assert.Len(t, ds.StagesOrDefault(), 10)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-go.yaml", "title: Go\nx_axis: implementation\ny_axis: 2\nmastery: 0.9\n")
	writeFile(t, dir, "a-ddd.yml", "title: DDD\nx_axis: architecture\ny_axis: 5\nmastery: 0.6\n")
	writeFile(t, dir, "notes.md", "# ignored\n")
	writeFile(t, dir, "stages.yaml", "stages:\n  - id: only\n    name: Only\n    order: 1\n")

	ds, err := Load(dir)
	require.NoError(t, err)

	titles := make([]string, 0, len(ds.Technologies))
	for _, tech := range ds.Technologies {
		titles = append(titles, tech.Title)
	}
	assert.Equal(t, []string{"DDD", "Go"}, titles)
	require.Len(t, ds.Stages, 1)
	assert.Equal(t, "only", ds.Stages[0].ID)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "content: load")

	bad := writeFile(t, dir, "bad.yaml", "technologies: [")
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content: unmarshal")
}

func TestQueries(t *testing.T) {
	ds, err := Parse([]byte(sampleDataset), "sample")
	require.NoError(t, err)

	tech, ok := ds.ByTitle("Go")
	require.True(t, ok)
	assert.Equal(t, "implementation", tech.Stage)
	_, ok = ds.ByTitle("Rust")
	assert.False(t, ok)

	assert.Len(t, ds.ByStage("architecture"), 1)
	assert.Empty(t, ds.ByStage("termination"))

	depth2 := ds.ByDepth(2)
	require.Len(t, depth2, 2)
	assert.Equal(t, "Go", depth2[0].Title)
	assert.Equal(t, "Terraform", depth2[1].Title)
}
