package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/techcanvas"
)

func TestValidateClean(t *testing.T) {
	ds, err := Parse([]byte(sampleDataset), "sample")
	require.NoError(t, err)
	assert.NoError(t, ds.Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	ds := Dataset{Technologies: []techcanvas.Technology{
		{Title: "A", Stage: "architecture", Depth: 3, Mastery: 0.5},
		{Title: "A", Stage: "architecture", Depth: 3, Mastery: 0.5},
		{Title: "Lost", Stage: "nope", Depth: 3, Mastery: 0.5},
		{Title: "Deep", Stage: "architecture", Depth: 9, Mastery: 0.5},
		{Title: "Master", Stage: "architecture", Depth: 1, Mastery: 1.5},
		{Title: "Far", Stage: "architecture", Depth: 1, Position: 11},
	}}

	err := ds.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `technology "A": duplicate title`)
	assert.Contains(t, msg, `technology "Lost": unknown stage "nope"`)
	assert.Contains(t, msg, `technology "Deep": depth 9 out of range`)
	assert.Contains(t, msg, `technology "Master": mastery 1.5 out of range`)
	assert.Contains(t, msg, `technology "Far": x_position 11 out of range`)
}

func TestValidateCustomStages(t *testing.T) {
	ds := Dataset{
		Stages: []techcanvas.Stage{{ID: "a", Order: 1}, {ID: "a", Order: 2}},
		Technologies: []techcanvas.Technology{
			{Title: "X", Stage: "architecture", Depth: 1},
		},
	}
	err := ds.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `stage "a": duplicate id`)
	assert.Contains(t, err.Error(), `unknown stage "architecture"`)
}
