package techcanvas

// Technology is a single data point on the canvas. Title is its identity.
type Technology struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon,omitempty"`
	// Stage is the ID of the lifecycle stage the point belongs to.
	Stage string `yaml:"x_axis"`
	// Position is the relative position inside the stage, 1..10 left to
	// right. Zero means absent and places the point at the stage midpoint.
	Position float64 `yaml:"x_position,omitempty"`
	// Depth is the abstraction depth, 1..5. Larger depths draw higher up.
	Depth float64 `yaml:"y_axis"`
	// Mastery is in [0, 1] and drives the point colour.
	Mastery     float64  `yaml:"mastery"`
	Tags        []string `yaml:"tags,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Details     string   `yaml:"details,omitempty"`
}

// Position bounds for Technology.Position.
const (
	MinPosition = 1.0
	MaxPosition = 10.0
)

// Depth axis bounds.
const (
	MinDepth = 1
	MaxDepth = 5
)
