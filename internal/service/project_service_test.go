package service

import (
	"strings"
	"testing"
)

func TestRandomSlug(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := randomSlug(8)
		if len(s) != 8 {
			t.Fatalf("randomSlug(8) = %q, want length 8", s)
		}
		for _, r := range s {
			if !strings.ContainsRune(slugAlphabet, r) {
				t.Fatalf("randomSlug produced %q, outside the slug alphabet", r)
			}
		}
		seen[s] = true
	}
	if len(seen) < 40 {
		t.Errorf("50 draws produced only %d distinct slugs", len(seen))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantPrefix string
	}{
		{"simple", "My Project", "my-project-"},
		{"punctuation collapsed", "Acme, Inc. (2024)", "acme-inc-2024-"},
		{"leading and trailing noise", "  --Hello--  ", "hello-"},
		{"unicode stripped", "Café Déjà Vu", "caf-d-j-vu-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugify(tt.title)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("slugify(%q) = %q, want prefix %q", tt.title, got, tt.wantPrefix)
			}
			suffix := strings.TrimPrefix(got, tt.wantPrefix)
			if len(suffix) != 4 {
				t.Errorf("slugify(%q) = %q, want 4 random suffix chars, got %q", tt.title, got, suffix)
			}
		})
	}

	t.Run("empty title gets a fully random handle", func(t *testing.T) {
		got := slugify("!!!")
		if len(got) != 8 {
			t.Errorf("slugify of all-punctuation = %q, want 8 random chars", got)
		}
	})
}
