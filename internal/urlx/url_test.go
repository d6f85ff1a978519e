package urlx

import "testing"

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "http://host", "http://host"},
		{"trailing slash", "http://host/", "http://host"},
		{"multiple trailing slashes", "http://host///", "http://host"},
		{"surrounding whitespace", "  http://host  ", "http://host"},
		{"single quotes", "'http://host'", "http://host"},
		{"double quotes", `"http://host"`, "http://host"},
		{"whitespace, quotes and slash", " 'http://host/' ", "http://host"},
		{"quote only on one side", "'http://host", "http://host"},
		{"empty", "", ""},
		{"port preserved", "http://127.0.0.1:8004/", "http://127.0.0.1:8004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBaseURL(tt.in); got != tt.want {
				t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
