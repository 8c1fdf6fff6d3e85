package template

import "testing"

func TestParseSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		path     string
		fallback Size
		want     Size
	}{
		{"segment match", "1080x1920/default.html", Size{}, Size{1080, 1920}},
		{"nested path", "templates/720x1280/minimal.html", Size{}, Size{720, 1280}},
		{"no segment", "custom_name.html", Size{}, DefaultSize},
		{"no segment with fallback", "custom_name.html", Size{640, 480}, Size{640, 480}},
		{"windows separators", `templates\1920x1080\wide.html`, Size{}, Size{1920, 1080}},
		{"size-like filename ignored", "templates/10x20abc/frame.html", Size{}, DefaultSize},
		{"first segment wins", "100x200/300x400/a.html", Size{}, Size{100, 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSize(tc.path, tc.fallback); got != tc.want {
				t.Fatalf("ParseSize(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	t.Parallel()

	if got := (Size{1080, 1920}).String(); got != "1080x1920" {
		t.Fatalf("unexpected string form: %q", got)
	}
}
