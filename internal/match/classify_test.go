package match

import "testing"

func TestClassifyOwned(t *testing.T) {
	cat := NewCatalog(
		[]string{"git", "htop"},
		[]string{"visual-studio-code", "firefox"},
	)

	tests := []struct {
		name     string
		app      App
		wantType PackageType
	}{
		{
			name:     "exact cask match case-insensitive",
			app:      App{Name: "Firefox", Path: "/Applications/Firefox.app", Origin: Cask},
			wantType: Cask,
		},
		{
			name:     "hyphen-insensitive cask match",
			app:      App{Name: "Visual-Studio-Code", Path: "/Applications/VSC.app", Origin: Cask},
			wantType: Cask,
		},
		{
			name:     "space vs hyphen cask match",
			app:      App{Name: "Visual Studio Code", Path: "/Applications/VSC.app", Origin: Cask},
			wantType: Cask,
		},
		{
			name:     "exact formula match for desktop entry",
			app:      App{Name: "htop", Path: "/usr/share/applications/htop.desktop", Origin: Formula},
			wantType: Formula,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Classify(tt.app, cat)
			if !rec.Owned {
				t.Fatalf("Classify(%q) Owned = false, want true", tt.app.Name)
			}
			if rec.OwnedType != tt.wantType {
				t.Errorf("OwnedType = %q, want %q", rec.OwnedType, tt.wantType)
			}
			// Ownership short-circuits the equivalence search.
			if rec.Equivalence != EquivalenceNotEvaluated {
				t.Errorf("Equivalence = %v, want NotEvaluated", rec.Equivalence)
			}
			if rec.Equivalent != "" {
				t.Errorf("Equivalent = %q, want empty", rec.Equivalent)
			}
		})
	}
}

// Ownership only consults the origin category's catalog: a formula name
// discovered as a GUI bundle is not owned, but the equivalence search
// still finds the formula.
func TestClassifyOriginScopedOwnership(t *testing.T) {
	cat := NewCatalog([]string{"git", "htop"}, []string{"visual-studio-code"})

	rec := Classify(App{Name: "Git", Path: "/Applications/Git.app", Origin: Cask}, cat)

	if rec.Owned {
		t.Fatal("Owned = true, want false (git is a formula, origin is cask)")
	}
	if rec.Equivalence != EquivalenceFound {
		t.Fatalf("Equivalence = %v, want Found", rec.Equivalence)
	}
	if rec.Equivalent != "git" {
		t.Errorf("Equivalent = %q, want %q", rec.Equivalent, "git")
	}
}

func TestClassifyEquivalentBySubstring(t *testing.T) {
	cat := NewCatalog([]string{"git", "htop"}, []string{"visual-studio-code"})

	// "Code" hyphenates to "code", which is contained in
	// "visual-studio-code".
	rec := Classify(App{Name: "Code", Path: "/Applications/Code.app", Origin: Cask}, cat)

	if rec.Owned {
		t.Fatal("Owned = true, want false")
	}
	if rec.Equivalence != EquivalenceFound {
		t.Fatalf("Equivalence = %v, want Found", rec.Equivalence)
	}
	if rec.Equivalent != "visual-studio-code" {
		t.Errorf("Equivalent = %q, want %q", rec.Equivalent, "visual-studio-code")
	}
}

func TestClassifyNoMatch(t *testing.T) {
	cat := NewCatalog([]string{"git", "htop"}, []string{"visual-studio-code"})

	rec := Classify(App{Name: "RandomTool", Path: "/Applications/RandomTool.app", Origin: Cask}, cat)

	if rec.Owned {
		t.Fatal("Owned = true, want false")
	}
	if rec.Equivalence != EquivalenceNone {
		t.Errorf("Equivalence = %v, want None", rec.Equivalence)
	}
	if rec.Equivalent != "" {
		t.Errorf("Equivalent = %q, want empty", rec.Equivalent)
	}
}

// When both a cask and a formula would match, the cask wins: the cask
// catalog is searched first and the formula list is never consulted.
func TestClassifyCaskBeforeFormula(t *testing.T) {
	cat := NewCatalog([]string{"wireshark"}, []string{"wireshark-app"})

	rec := Classify(App{Name: "Wireshark", Path: "/Applications/Wireshark.app", Origin: Cask}, cat)

	if rec.Owned {
		t.Fatal("Owned = true, want false (no cask matches stage 1 exactly)")
	}
	if rec.Equivalence != EquivalenceFound {
		t.Fatalf("Equivalence = %v, want Found", rec.Equivalence)
	}
	if rec.Equivalent != "wireshark-app" {
		t.Errorf("Equivalent = %q, want cask %q", rec.Equivalent, "wireshark-app")
	}
}

// First entry in catalog order wins when several entries qualify.
func TestClassifyFirstMatchInCatalogOrder(t *testing.T) {
	cat := NewCatalog(nil, []string{"code-composer", "visual-studio-code"})

	rec := Classify(App{Name: "Code", Path: "/Applications/Code.app", Origin: Cask}, cat)

	if rec.Equivalent != "code-composer" {
		t.Errorf("Equivalent = %q, want first catalog entry %q", rec.Equivalent, "code-composer")
	}
}

func TestClassifyEmptyCaskCatalog(t *testing.T) {
	cat := NewCatalog([]string{"git"}, nil)

	rec := Classify(App{Name: "Git", Path: "/usr/share/applications/git.desktop", Origin: Formula}, cat)

	if !rec.Owned || rec.OwnedType != Formula {
		t.Errorf("got Owned=%v OwnedType=%q, want owned formula", rec.Owned, rec.OwnedType)
	}
}
