package util

import "testing"

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	if got := GetEnvString("TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("GetEnvString() = %q, want %q", got, "value")
	}
	if got := GetEnvString("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("GetEnvString() = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "15")
	t.Setenv("TEST_INT_BAD", "fifteen")

	if got := GetEnvInt("TEST_INT", 3); got != 15 {
		t.Fatalf("GetEnvInt() = %d, want 15", got)
	}
	if got := GetEnvInt("TEST_INT_BAD", 3); got != 3 {
		t.Fatalf("GetEnvInt() = %d, want fallback 3", got)
	}
	if got := GetEnvInt("TEST_INT_UNSET", 3); got != 3 {
		t.Fatalf("GetEnvInt() = %d, want fallback 3", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "yes")

	if got := GetEnvBool("TEST_BOOL", false); !got {
		t.Fatalf("GetEnvBool() = false, want true")
	}
	if got := GetEnvBool("TEST_BOOL_BAD", false); got {
		t.Fatalf("GetEnvBool() = true, want fallback false")
	}
}
