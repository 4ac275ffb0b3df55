package techcanvas

import "sort"

// Stage is one phase of the development lifecycle shown on the X axis.
type Stage struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	NameEn       string   `yaml:"nameEn"`
	Order        int      `yaml:"order"`
	Description  string   `yaml:"description"`
	Activities   []string `yaml:"activities"`
	Deliverables []string `yaml:"deliverables"`
	KPIs         []string `yaml:"kpis"`
}

// Label returns the name drawn under the stage segment. The English name is
// preferred because the bundled font has no CJK glyphs.
func (s Stage) Label() string {
	if s.NameEn != "" {
		return s.NameEn
	}
	return s.Name
}

// Catalog is an immutable list of stages sorted by Order.
type Catalog struct {
	stages []Stage
	byID   map[string]int
}

// NewCatalog copies stages, sorts them by Order and indexes them by ID.
// When two stages share an ID the first one (after sorting) wins.
func NewCatalog(stages []Stage) *Catalog {
	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	c := &Catalog{stages: sorted, byID: make(map[string]int, len(sorted))}
	for i, s := range sorted {
		if _, dup := c.byID[s.ID]; !dup {
			c.byID[s.ID] = i
		}
	}
	return c
}

// Stages returns the ordered stages. The returned slice MUST NOT be mutated.
func (c *Catalog) Stages() []Stage {
	return c.stages
}

// Len returns the number of stages.
func (c *Catalog) Len() int {
	return len(c.stages)
}

// Index returns the position of the stage with the given ID, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// ByID looks up a stage by ID.
func (c *Catalog) ByID(id string) (Stage, bool) {
	i := c.Index(id)
	if i < 0 {
		return Stage{}, false
	}
	return c.stages[i], true
}

// ByOrder looks up a stage by its Order value.
func (c *Catalog) ByOrder(order int) (Stage, bool) {
	for _, s := range c.stages {
		if s.Order == order {
			return s, true
		}
	}
	return Stage{}, false
}

// DefaultStages returns the ten built-in lifecycle stages.
func DefaultStages() []Stage {
	return []Stage{
		{
			ID: "exploration", Name: "需求探索", NameEn: "Exploration", Order: 1,
			Description:  "Discover and define business opportunities and early user needs.",
			Activities:   []string{"Market research", "User interviews", "Competitive analysis", "Feasibility study", "Business value analysis"},
			Deliverables: []string{"Market requirements document", "Opportunity report", "Initial budget estimate", "Project proposal"},
			KPIs:         []string{"Opportunity accuracy", "Research coverage", "Depth of understanding"},
		},
		{
			ID: "requirements", Name: "需求分析", NameEn: "Requirements", Order: 2,
			Description:  "Analyse and specify system requirements and user stories.",
			Activities:   []string{"Requirement gathering", "User story writing", "Prioritisation", "Acceptance criteria", "Stakeholder communication"},
			Deliverables: []string{"Software requirements specification", "User story map", "Acceptance criteria", "Prototype"},
			KPIs:         []string{"Completeness", "Consistency", "Predicted satisfaction"},
		},
		{
			ID: "architecture", Name: "架构设计", NameEn: "Architecture", Order: 3,
			Description:  "Design the overall architecture and choose technologies.",
			Activities:   []string{"System architecture", "Technology selection", "Architecture review", "Non-functional analysis", "Risk assessment"},
			Deliverables: []string{"Architecture design document", "Technology selection report", "System diagram", "Deployment diagram", "Database design"},
			KPIs:         []string{"Scalability", "Performance predictability", "Technical risk control"},
		},
		{
			ID: "detailed-design", Name: "详细设计", NameEn: "Detailed Design", Order: 4,
			Description:  "Design module interfaces, classes and database structure.",
			Activities:   []string{"Module design", "API design", "Detailed schema design", "Class design", "Sequence diagrams"},
			Deliverables: []string{"Detailed design document", "API reference", "ER diagram", "Class and sequence diagrams", "Test plan"},
			KPIs:         []string{"Design coverage", "Interface consistency", "Maintainability"},
		},
		{
			ID: "implementation", Name: "编码实现", NameEn: "Implementation", Order: 5,
			Description:  "Write the code that implements the system.",
			Activities:   []string{"Coding", "Unit test writing", "Code review", "Refactoring", "Tech debt management"},
			Deliverables: []string{"Source code", "Unit tests", "Review reports", "Technical docs"},
			KPIs:         []string{"Code quality", "Test coverage", "Velocity", "Defect density"},
		},
		{
			ID: "unit-testing", Name: "单元测试", NameEn: "Unit Testing", Order: 6,
			Description:  "Test code units in isolation.",
			Activities:   []string{"Test case design", "Test execution", "Coverage analysis", "Defect fixing", "Test reporting"},
			Deliverables: []string{"Unit test cases", "Coverage report", "Defect report", "Test summary"},
			KPIs:         []string{"Coverage", "Defect discovery rate", "Execution efficiency"},
		},
		{
			ID: "integration-testing", Name: "集成测试", NameEn: "Integration Testing", Order: 7,
			Description:  "Test how modules integrate and the system as a whole.",
			Activities:   []string{"Integration case design", "Interface testing", "System integration", "End-to-end testing", "Performance testing"},
			Deliverables: []string{"Integration test cases", "Integration report", "Performance report", "Fix log"},
			KPIs:         []string{"Integration success rate", "Performance compliance", "Fix rate"},
		},
		{
			ID: "deployment", Name: "部署发布", NameEn: "Deployment", Order: 8,
			Description:  "Deploy the system to production.",
			Activities:   []string{"Release preparation", "Environment configuration", "Data migration", "Canary release", "Release verification"},
			Deliverables: []string{"Deployment scripts", "Deployment guide", "Operations manual", "Release report", "Rollback plan"},
			KPIs:         []string{"Deployment success rate", "Release time", "Rollback rate", "Availability"},
		},
		{
			ID: "maintenance", Name: "运维监控", NameEn: "Maintenance", Order: 9,
			Description:  "Monitor and maintain the running system.",
			Activities:   []string{"Monitoring", "Log analysis", "Diagnosis", "Performance tuning", "Capacity planning"},
			Deliverables: []string{"Dashboards", "Operations report", "Incident report", "Tuning recommendations", "Capacity plan"},
			KPIs:         []string{"Availability", "Mean response time", "Recovery time", "Resource utilisation"},
		},
		{
			ID: "termination", Name: "项目终止", NameEn: "Termination", Order: 10,
			Description:  "End of the project lifecycle or system decommissioning.",
			Activities:   []string{"Retrospective", "Knowledge archiving", "Data archiving", "Resource release", "Knowledge transfer"},
			Deliverables: []string{"Project summary", "Lessons learned", "Archived data", "Knowledge base", "Asset disposal report"},
			KPIs:         []string{"Knowledge retention", "Resource recovery", "Project success", "Team growth"},
		},
	}
}
