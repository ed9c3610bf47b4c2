package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		args     []interface{}
		expected string
	}{
		{"no args", "error.invalid-body", nil, "Invalid request body"},
		{"string arg", "session.created", []interface{}{"abc"}, "Dashboard session abc created"},
		{"numeric args", "dashboard.stale", []interface{}{uint64(1), uint64(2)}, "Discarding stale response of request 1, latest issued is 2"},
		{"float args", "dashboard.geolocation.start", []interface{}{51.5, -0.12, 3}, "Fetching weather for coordinates (51.5, -0.12) (request 3)"},
		{"missing key", "does.not.exist", nil, "Message not found: does.not.exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestInitMergesOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "notification:\n  city-not-found:\n    title: \"Unknown city\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = Init("") })

	if got := GetMessage("notification.city-not-found.title"); got != "Unknown city" {
		t.Fatalf("expected the override, got %q", got)
	}
	if got := GetMessage("notification.city-not-found.description"); got != "Please check the city name and try again." {
		t.Fatalf("expected the embedded default, got %q", got)
	}
}
