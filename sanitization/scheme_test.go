package sanitization

import "testing"

func TestSchemeFind(t *testing.T) {
	repo := BuiltinRegistry()

	if _, ok := repo.Find("missing"); ok {
		t.Fatal("expected missing scheme to not be found")
	}

	if _, ok := repo.Find("random"); !ok {
		t.Fatal("expected random scheme to be registered")
	}
}

func TestSchemeNamesSorted(t *testing.T) {
	repo := BuiltinRegistry()
	names := repo.Names()

	want := []string{"badblocks", "dod", "gost", "one", "random", "random2x", "vsitr", "zero"}
	if len(names) != len(want) {
		t.Fatalf("expected %d schemes, got %d: %v", len(want), len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d]: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestSchemeStageOrder(t *testing.T) {
	repo := BuiltinRegistry()

	dod, _ := repo.Find("dod")
	if len(dod.Stages) != 3 {
		t.Fatalf("expected dod to have 3 stages, got %d", len(dod.Stages))
	}
	if dod.Stages[0].Value() != 0x00 || dod.Stages[1].Value() != 0xFF || !dod.Stages[2].IsRandom() {
		t.Fatal("dod stage order does not match 0x00, 0xFF, random")
	}

	vsitr, _ := repo.Find("vsitr")
	if len(vsitr.Stages) != 7 || !vsitr.Stages[6].IsRandom() {
		t.Fatal("vsitr should be 6 constant stages followed by a random stage")
	}
}

func TestMergeOverridesByName(t *testing.T) {
	repo := BuiltinRegistry()
	custom := repo.Merge(map[string]Scheme{
		"zero": {Description: "overridden", Stages: []Stage{One()}},
		"mine": {Description: "custom", Stages: []Stage{Zero()}},
	})

	zero, _ := custom.Find("zero")
	if zero.Description != "overridden" {
		t.Fatal("expected merge to override existing scheme names")
	}

	if _, ok := custom.Find("mine"); !ok {
		t.Fatal("expected merge to add new scheme names")
	}

	if _, ok := repo.Find("mine"); ok {
		t.Fatal("merge must not mutate the original registry")
	}
}
