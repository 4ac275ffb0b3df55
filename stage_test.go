package techcanvas

import "testing"

func TestDefaultStagesOrdered(t *testing.T) {
	cat := NewCatalog(DefaultStages())
	if cat.Len() != 10 {
		t.Fatalf("Len = %d, want 10", cat.Len())
	}
	for i, s := range cat.Stages() {
		if s.Order != i+1 {
			t.Errorf("stage %d (%s) Order = %d, want %d", i, s.ID, s.Order, i+1)
		}
		if s.ID == "" || s.Name == "" || s.NameEn == "" {
			t.Errorf("stage %d has empty identity fields: %+v", i, s)
		}
	}
	if got := cat.Index("architecture"); got != 2 {
		t.Errorf("Index(architecture) = %d, want 2", got)
	}
	if got := cat.Index("termination"); got != 9 {
		t.Errorf("Index(termination) = %d, want 9", got)
	}
}

func TestCatalogSortsByOrder(t *testing.T) {
	cat := NewCatalog([]Stage{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	})
	for i, want := range []string{"a", "b", "c"} {
		if got := cat.Stages()[i].ID; got != want {
			t.Errorf("Stages()[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestCatalogDoesNotAliasInput(t *testing.T) {
	in := []Stage{{ID: "a", Order: 1}}
	cat := NewCatalog(in)
	in[0].ID = "changed"
	if _, ok := cat.ByID("a"); !ok {
		t.Error("catalog changed when the input slice was mutated")
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := NewCatalog(DefaultStages())

	s, ok := cat.ByID("deployment")
	if !ok || s.Order != 8 {
		t.Errorf("ByID(deployment) = %+v, %v", s, ok)
	}
	if _, ok := cat.ByID("nope"); ok {
		t.Error("ByID(nope) found a stage")
	}
	if cat.Index("nope") != -1 {
		t.Error("Index(nope) != -1")
	}

	s, ok = cat.ByOrder(5)
	if !ok || s.ID != "implementation" {
		t.Errorf("ByOrder(5) = %+v, %v", s, ok)
	}
	if _, ok := cat.ByOrder(42); ok {
		t.Error("ByOrder(42) found a stage")
	}
}

func TestCatalogDuplicateIDFirstWins(t *testing.T) {
	cat := NewCatalog([]Stage{
		{ID: "dup", Name: "second", Order: 2},
		{ID: "dup", Name: "first", Order: 1},
	})
	s, _ := cat.ByID("dup")
	if s.Name != "first" {
		t.Errorf("ByID(dup).Name = %q, want first", s.Name)
	}
}

func TestStageLabel(t *testing.T) {
	if got := (Stage{Name: "架构设计", NameEn: "Architecture"}).Label(); got != "Architecture" {
		t.Errorf("Label = %q, want Architecture", got)
	}
	if got := (Stage{Name: "架构设计"}).Label(); got != "架构设计" {
		t.Errorf("Label without NameEn = %q", got)
	}
}
