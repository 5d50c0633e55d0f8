package rooms

import "testing"

func TestTemplatesFor(t *testing.T) {
	tests := []struct {
		name string
		room string
	}{
		{name: "living room", room: "Living Room"},
		{name: "bedroom", room: "Bedroom"},
		{name: "dining room", room: "Dining Room"},
		{name: "general", room: "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := TemplatesFor(tt.room)
			if len(urls) != 4 {
				t.Errorf("Expected 4 templates for %s, got %d", tt.room, len(urls))
			}
		})
	}
}

func TestTemplatesForUnknownCategoryFallsBack(t *testing.T) {
	fallback := TemplatesFor(DefaultCategory)
	got := TemplatesFor("Home Office")

	if len(got) != len(fallback) {
		t.Fatalf("Expected fallback set of %d templates, got %d", len(fallback), len(got))
	}
	for i := range got {
		if got[i] != fallback[i] {
			t.Errorf("Expected fallback template %q at index %d, got %q", fallback[i], i, got[i])
		}
	}
}
