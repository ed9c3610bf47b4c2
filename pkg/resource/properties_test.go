package resource

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetString("app.server.context-path"); got != "/weathercast" {
		t.Fatalf("expected /weathercast, got %q", got)
	}
	if got := GetDuration("app.provider.weather-delay"); got != time.Second {
		t.Fatalf("expected 1s, got %s", got)
	}
	if got := GetInt("app.dashboard.inbox-size"); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if GetBool("app.provider.rate-limit.enabled") {
		t.Fatal("expected rate limiting to be disabled by default")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("DEFAULT_CITY", "Tokyo")
	t.Setenv("SESSION_MAX_IDLE", "5m")
	if err := Init(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = Init("") })

	if got := GetString("app.dashboard.default-city"); got != "Tokyo" {
		t.Fatalf("expected Tokyo, got %q", got)
	}
	if got := GetDuration("app.session.max-idle"); got != 5*time.Minute {
		t.Fatalf("expected 5m, got %s", got)
	}
}

func TestResolveValue(t *testing.T) {
	t.Setenv("WEATHERCAST_TEST_VALUE", "set")

	tests := []struct {
		value    any
		expected any
	}{
		{"${WEATHERCAST_TEST_VALUE:fallback}", "set"},
		{"${WEATHERCAST_TEST_MISSING:fallback}", "fallback"},
		{"${WEATHERCAST_TEST_MISSING}", ""},
		{"plain", "plain"},
		{42, 42},
	}

	for _, tt := range tests {
		if got := resolveValue(tt.value); got != tt.expected {
			t.Errorf("resolveValue(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}
