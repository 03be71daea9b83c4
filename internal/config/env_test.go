package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", 45 * time.Second},
		{"30s", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"soon", 45 * time.Second},
		{"-5s", 45 * time.Second},
	}

	for _, tc := range cases {
		t.Setenv("GEMINI_TIMEOUT_TEST", tc.val)
		if got := durationEnvOrDefault("GEMINI_TIMEOUT_TEST", 45*time.Second); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("ORIGINS_TEST", " http://a.example , ,http://b.example ")
	got := listEnvOrDefault("ORIGINS_TEST", "*")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}

	t.Setenv("ORIGINS_TEST", " , ")
	if got := listEnvOrDefault("ORIGINS_TEST", "*"); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected default for blank list, got %v", got)
	}
}
