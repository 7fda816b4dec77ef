package match

import "testing"

func TestFlatKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "git", "git"},
		{"uppercase", "Git", "git"},
		{"spaces removed", "Visual Studio Code", "visualstudiocode"},
		{"hyphens removed", "visual-studio-code", "visualstudiocode"},
		{"mixed separators", "Android File-Transfer", "androidfiletransfer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlatKey(tt.in); got != tt.want {
				t.Errorf("FlatKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHyphenKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "htop", "htop"},
		{"spaces to hyphens", "Visual Studio Code", "visual-studio-code"},
		{"existing hyphens kept", "android-file-transfer", "android-file-transfer"},
		{"mixed", "Sublime Text", "sublime-text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HyphenKey(tt.in); got != tt.want {
				t.Errorf("HyphenKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Keys are pure: re-applying a normalizer to its own output must be a
// no-op, and repeated calls must agree.
func TestKeysIdempotent(t *testing.T) {
	inputs := []string{"Visual Studio Code", "git", "Über App", "a-b c"}

	for _, in := range inputs {
		flat := FlatKey(in)
		if again := FlatKey(flat); again != flat {
			t.Errorf("FlatKey not idempotent for %q: %q != %q", in, again, flat)
		}
		if FlatKey(in) != flat {
			t.Errorf("FlatKey not deterministic for %q", in)
		}

		hyph := HyphenKey(in)
		if again := HyphenKey(hyph); again != hyph {
			t.Errorf("HyphenKey not idempotent for %q: %q != %q", in, again, hyph)
		}
		if HyphenKey(in) != hyph {
			t.Errorf("HyphenKey not deterministic for %q", in)
		}
	}
}
